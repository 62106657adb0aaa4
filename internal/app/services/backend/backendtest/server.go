// Package backendtest runs an in-memory scheduling backend for tests.
package backendtest

import (
	"fmt"
	"medportal-service/internal/app/models"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/dto/requests"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type Server struct {
	URL string

	mu           sync.Mutex
	hospitals    []models.Hospital
	doctors      []models.Doctor
	slots        []models.Slot
	appointments []models.Appointment
	failures     map[string][]int
	calls        map[string]int
	nextID       int
}

// NewServer starts the backend and closes it when the test ends.
func NewServer(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		failures: make(map[string][]int),
		calls:    make(map[string]int),
	}

	router := chi.NewRouter()
	router.Get("/hospital", s.listHospitals)
	router.Get("/doctor/doctor-hospital", s.listDoctors)
	router.Get("/slot/doctor/{doctorId}/date/{date}", s.listSlots)
	router.Post("/slot", s.createSlot)
	router.Put("/slot", s.updateSlot)
	router.Delete("/slot/{slotId}", s.deleteSlot)
	router.Post("/appointment", s.createAppointment)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	s.URL = server.URL
	return s
}

func (s *Server) AddHospital(hospital models.Hospital) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hospitals = append(s.hospitals, hospital)
}

func (s *Server) AddDoctor(doctor models.Doctor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doctors = append(s.doctors, doctor)
}

func (s *Server) AddSlot(slot models.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = append(s.slots, slot)
}

// Fail makes the next len(statuses) calls of operation answer with those
// statuses instead of being served.
func (s *Server) Fail(operation string, statuses ...int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[operation] = append(s.failures[operation], statuses...)
}

func (s *Server) Calls(operation string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[operation]
}

func (s *Server) Slot(slotID string) (models.Slot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range s.slots {
		if slot.SlotID == slotID {
			return slot, true
		}
	}
	return models.Slot{}, false
}

func (s *Server) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Appointment{}, s.appointments...)
}

// begin records the call and reports whether an injected failure was written.
func (s *Server) begin(w http.ResponseWriter, operation string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[operation]++
	pending := s.failures[operation]
	if len(pending) == 0 {
		return false
	}
	s.failures[operation] = pending[1:]
	w.WriteHeader(pending[0])
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) listHospitals(w http.ResponseWriter, r *http.Request) {
	if s.begin(w, constvars.OperationListHospitals) {
		return
	}
	s.mu.Lock()
	hospitals := append([]models.Hospital{}, s.hospitals...)
	s.mu.Unlock()
	writeJSON(w, hospitals)
}

func (s *Server) listDoctors(w http.ResponseWriter, r *http.Request) {
	if s.begin(w, constvars.OperationListDoctors) {
		return
	}
	hospitalID := r.URL.Query().Get(constvars.BackendQueryHospitalID)
	s.mu.Lock()
	doctors := []models.Doctor{}
	for _, doctor := range s.doctors {
		if doctor.HospitalID == hospitalID {
			doctors = append(doctors, doctor)
		}
	}
	s.mu.Unlock()
	writeJSON(w, doctors)
}

func (s *Server) listSlots(w http.ResponseWriter, r *http.Request) {
	if s.begin(w, constvars.OperationListSlots) {
		return
	}
	doctorID := chi.URLParam(r, "doctorId")
	date := chi.URLParam(r, "date")
	s.mu.Lock()
	slots := []models.Slot{}
	for _, slot := range s.slots {
		if slot.DoctorID == doctorID && slot.SlotDate == date {
			slots = append(slots, slot)
		}
	}
	s.mu.Unlock()
	writeJSON(w, slots)
}

func (s *Server) createSlot(w http.ResponseWriter, r *http.Request) {
	if s.begin(w, constvars.OperationCreateSlot) {
		return
	}
	var request requests.CreateSlot
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.nextID++
	slot := models.Slot{
		SlotID:     fmt.Sprintf("S%d", s.nextID),
		DoctorID:   request.DoctorID,
		HospitalID: request.HospitalID,
		SlotDate:   request.SlotDate,
		StartTime:  request.StartTime,
		EndTime:    request.EndTime,
		ApptStatus: request.ApptStatus,
	}
	s.slots = append(s.slots, slot)
	s.mu.Unlock()
	writeJSON(w, slot)
}

func (s *Server) updateSlot(w http.ResponseWriter, r *http.Request) {
	if s.begin(w, constvars.OperationUpdateSlot) {
		return
	}
	var slot models.Slot
	if err := json.NewDecoder(r.Body).Decode(&slot); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slots {
		if s.slots[i].SlotID == slot.SlotID {
			s.slots[i] = slot
			writeJSON(w, slot)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (s *Server) deleteSlot(w http.ResponseWriter, r *http.Request) {
	if s.begin(w, constvars.OperationDeleteSlot) {
		return
	}
	slotID := chi.URLParam(r, "slotId")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.slots {
		if s.slots[i].SlotID == slotID {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (s *Server) createAppointment(w http.ResponseWriter, r *http.Request) {
	if s.begin(w, constvars.OperationCreateAppointment) {
		return
	}
	var request requests.CreateAppointment
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.nextID++
	appointment := models.Appointment{
		AppointmentID: fmt.Sprintf("A%d", s.nextID),
		PatientID:     request.PatientID,
		DoctorID:      request.DoctorID,
		HospitalID:    request.HospitalID,
		StartTime:     request.StartTime,
		EndTime:       request.EndTime,
		Type:          request.Type,
		Reason:        request.Reason,
		Symptoms:      request.Symptoms,
		Status:        "Scheduled",
	}
	s.appointments = append(s.appointments, appointment)
	s.mu.Unlock()
	writeJSON(w, appointment)
}
