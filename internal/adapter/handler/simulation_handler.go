package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hotelops/simulator/internal/adapter/export"
	"github.com/hotelops/simulator/internal/core/domain"
	"github.com/hotelops/simulator/internal/core/ports"
	"github.com/hotelops/simulator/internal/core/services"
)

const dateLayout = "2006-01-02"

type SimulationHandler struct {
	runner       *services.Runner
	availability *services.AvailabilityService
}

func NewSimulationHandler(runner *services.Runner, availability *services.AvailabilityService) *SimulationHandler {
	return &SimulationHandler{runner: runner, availability: availability}
}

type RunSimulationRequest struct {
	HotelID   string `json:"hotel_id"`
	Days      int    `json:"days"`
	Seed      int64  `json:"seed"`
	StartDate string `json:"start_date"`
}

func (h *SimulationHandler) RunSimulation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
		return
	}

	var req RunSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid json body"})
		return
	}

	hotelID, err := uuid.Parse(req.HotelID)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid hotel id"})
		return
	}

	if req.Days <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "days must be positive"})
		return
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.StartDate != "" {
		startDate, err = time.Parse(dateLayout, req.StartDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid start_date, expected YYYY-MM-DD"})
			return
		}
	}

	result, err := h.runner.Run(r.Context(), hotelID, req.Days, req.Seed, startDate)
	if err != nil {
		if errors.Is(err, domain.ErrHotelNotFound) {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "hotel not found"})
			return
		}

		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=simulation_events.csv")
		w.WriteHeader(http.StatusCreated)
		if err := export.WriteEventsCSV(w, result.Events); err != nil {
			log.Printf("Failed to stream event log csv: %v", err)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

func (h *SimulationHandler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
		return
	}

	hotelID, err := uuid.Parse(r.URL.Query().Get("hotel_id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid hotel id"})
		return
	}

	checkIn, err := time.Parse(dateLayout, r.URL.Query().Get("check_in"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid check_in, expected YYYY-MM-DD"})
		return
	}

	checkOut, err := time.Parse(dateLayout, r.URL.Query().Get("check_out"))
	if err != nil || !checkOut.After(checkIn) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid check_out, expected YYYY-MM-DD after check_in"})
		return
	}

	filter := ports.RoomFilter{RoomType: r.URL.Query().Get("room_type")}
	if floorParam := r.URL.Query().Get("floor"); floorParam != "" {
		floor, err := strconv.Atoi(floorParam)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid floor"})
			return
		}
		filter.Floor = floor
	}

	stay := domain.DateRange{CheckIn: checkIn, CheckOut: checkOut}

	rooms, err := h.availability.FindAvailable(r.Context(), hotelID, stay, filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		return
	}

	json.NewEncoder(w).Encode(rooms)
}
