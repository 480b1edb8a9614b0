package services

// Synthetic guest name pools. The cross product (56 x 48 = 2688
// combinations) keeps repeat names rare enough that long runs do not
// produce misleading demographic figures.
var guestFirstNames = []string{
	"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Jennifer",
	"William", "Lisa", "Thomas", "Jessica", "Daniel", "Amanda", "Christopher", "Melissa",
	"Matthew", "Nicole", "Andrew", "Stephanie", "James", "Rebecca", "Joshua", "Laura",
	"Kevin", "Heather", "Brian", "Michelle", "Timothy", "Christina", "Jason", "Elizabeth",
	"Ryan", "Katherine", "Jacob", "Samantha", "Gary", "Ashley", "Nicholas", "Megan",
	"Carlos", "Maria", "Wei", "Li", "Pierre", "Sophie", "Hans", "Anna",
	"Yuki", "Hiro", "Aisha", "Mohammed", "Luca", "Giovanna", "Ivan", "Olga",
}

var guestLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Wilson",
	"Taylor", "Anderson", "Thomas", "Jackson", "White", "Harris", "Martin", "Thompson",
	"Garcia", "Martinez", "Robinson", "Clark", "Rodriguez", "Lewis", "Lee", "Walker",
	"Hall", "Allen", "Young", "Hernandez", "King", "Wright", "Lopez", "Hill",
	"Gonzalez", "Wang", "Zhang", "Dubois", "Muller", "Tanaka", "Ivanov", "Khan",
	"Rossi", "Silva", "Kim", "Patel", "Nguyen", "Chen", "Wong", "Sato",
}
