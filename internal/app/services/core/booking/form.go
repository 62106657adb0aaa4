package booking

import (
	"context"
	"medportal-service/internal/app/contracts"
	"medportal-service/internal/app/models"
	"medportal-service/internal/app/services/core/appointments"
	"medportal-service/internal/app/services/core/slots"
	"medportal-service/internal/pkg/constvars"
	"medportal-service/internal/pkg/dto/responses"
	"medportal-service/internal/pkg/exceptions"
	"slices"
	"sync"

	"go.uber.org/zap"
)

type Booker interface {
	Book(ctx context.Context, request *appointments.BookingRequest, board *slots.Board) (*models.Appointment, error)
}

// Form is the state of one patient booking dialog. Network calls are never
// made while holding mu.
type Form struct {
	PatientID      string
	HospitalClient contracts.HospitalClient
	DoctorClient   contracts.DoctorClient
	Booker         Booker
	Board          *slots.Board
	Log            *zap.Logger

	mu          sync.Mutex
	today       string
	hospitalID  string
	doctorID    string
	slotID      string
	visitType   string
	date        string
	reason      string
	symptoms    string
	hospitals   []models.Hospital
	doctors     []models.Doctor
	doctorsSeq  uint64
	submitting  bool
	appointment *models.Appointment
	// pending was created for pendingSlotID but the slot is not reserved yet
	pending       *models.Appointment
	pendingSlotID string
}

func NewForm(
	patientID, today string,
	hospitalClient contracts.HospitalClient,
	doctorClient contracts.DoctorClient,
	booker Booker,
	board *slots.Board,
	logger *zap.Logger,
) *Form {
	return &Form{
		PatientID:      patientID,
		HospitalClient: hospitalClient,
		DoctorClient:   doctorClient,
		Booker:         booker,
		Board:          board,
		Log:            logger,
		today:          today,
		date:           today,
		hospitals:      []models.Hospital{},
		doctors:        []models.Doctor{},
	}
}

// LoadHospitals fills the hospital picker.
func (f *Form) LoadHospitals(ctx context.Context) error {
	hospitals, err := f.HospitalClient.ListHospitals(ctx)
	if err != nil {
		return err
	}

	if hospitals == nil {
		hospitals = []models.Hospital{}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.hospitals = hospitals
	return nil
}

// SelectHospital clears the doctor and slot selection and loads the doctors
// of hospitalID.
func (f *Form) SelectHospital(ctx context.Context, hospitalID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	f.mu.Lock()
	f.hospitalID = hospitalID
	f.doctorID = ""
	f.slotID = ""
	f.doctors = []models.Doctor{}
	f.doctorsSeq++
	sequence := f.doctorsSeq
	f.mu.Unlock()
	f.Board.Clear()

	doctors, err := f.DoctorClient.ListDoctorsByHospital(ctx, hospitalID)

	f.mu.Lock()
	defer f.mu.Unlock()
	if sequence != f.doctorsSeq {
		f.Log.Info("Form.SelectHospital discarded stale doctor list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingHospitalIDKey, hospitalID),
		)
		return nil
	}
	if err != nil {
		return err
	}
	if doctors != nil {
		f.doctors = doctors
	}
	return nil
}

// SelectDoctor clears the slot selection and loads the doctor's slots for
// the current date.
func (f *Form) SelectDoctor(ctx context.Context, doctorID string) error {
	f.mu.Lock()
	f.doctorID = doctorID
	f.slotID = ""
	date := f.date
	f.mu.Unlock()

	return f.Board.Load(ctx, doctorID, date)
}

// SelectDate reloads the slots of the current doctor, if one is selected.
func (f *Form) SelectDate(ctx context.Context, date string) error {
	f.mu.Lock()
	f.date = date
	f.slotID = ""
	doctorID := f.doctorID
	f.mu.Unlock()

	if doctorID == "" {
		return nil
	}
	return f.Board.Load(ctx, doctorID, date)
}

func (f *Form) SelectSlot(slotID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slotID = slotID
}

func (f *Form) SetDetails(visitType, reason, symptoms string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visitType = visitType
	f.reason = reason
	f.symptoms = symptoms
}

// Submit books the selected slot. A second Submit while one is in flight
// fails without sending anything. On success the dialog is reset and the
// confirmed appointment is kept for display. When an appointment was created
// but its slot could not be reserved, the next Submit for the same slot only
// retries the reservation.
func (f *Form) Submit(ctx context.Context) (*models.Appointment, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, exceptions.ErrSubmissionInProgress()
	}
	switch {
	case f.hospitalID == "":
		f.mu.Unlock()
		return nil, exceptions.ErrHospitalNotSelected()
	case f.doctorID == "":
		f.mu.Unlock()
		return nil, exceptions.ErrDoctorNotSelected()
	case f.slotID == "":
		f.mu.Unlock()
		return nil, exceptions.ErrSlotNotInList(f.slotID)
	}
	f.submitting = true
	request := &appointments.BookingRequest{
		PatientID:  f.PatientID,
		DoctorID:   f.doctorID,
		HospitalID: f.hospitalID,
		SlotID:     f.slotID,
		Type:       f.visitType,
		Reason:     f.reason,
		Symptoms:   f.symptoms,
	}
	if f.pending != nil && f.pendingSlotID == f.slotID {
		request.Created = f.pending
	}
	f.mu.Unlock()

	appointment, err := f.Booker.Book(ctx, request, f.Board)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		if appointment != nil {
			f.pending = appointment
			f.pendingSlotID = request.SlotID
		}
		f.mu.Unlock()
		return nil, err
	}
	f.pending = nil
	f.pendingSlotID = ""
	f.mu.Unlock()

	f.Reset()
	f.mu.Lock()
	f.appointment = appointment
	f.mu.Unlock()
	return appointment, nil
}

// Reset clears every selection and loaded list, as when the dialog is
// closed and reopened. An appointment still waiting for its slot is kept.
func (f *Form) Reset() {
	f.mu.Lock()
	f.hospitalID = ""
	f.doctorID = ""
	f.slotID = ""
	f.visitType = ""
	f.reason = ""
	f.symptoms = ""
	f.date = f.today
	f.hospitals = []models.Hospital{}
	f.doctors = []models.Doctor{}
	f.doctorsSeq++
	f.appointment = nil
	f.mu.Unlock()
	f.Board.Clear()
}

func (f *Form) Snapshot() *responses.BookingForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &responses.BookingForm{
		PatientID:   f.PatientID,
		HospitalID:  f.hospitalID,
		DoctorID:    f.doctorID,
		SlotID:      f.slotID,
		Type:        f.visitType,
		Date:        f.date,
		Reason:      f.reason,
		Symptoms:    f.symptoms,
		Submitting:  f.submitting,
		Hospitals:   slices.Clone(f.hospitals),
		Doctors:     slices.Clone(f.doctors),
		Slots:       f.Board.Slots(),
		VisitTypes:  models.VisitTypes,
		Appointment: f.appointment,
		Pending:     f.pending,
	}
}
