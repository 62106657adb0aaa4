package models

type Hospital struct {
	HospitalID string `json:"hospitalId"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

type Doctor struct {
	DoctorID       string `json:"doctorId"`
	HospitalID     string `json:"hospitalId"`
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
}
