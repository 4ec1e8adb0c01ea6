package patient

import (
	patientsvc "github.com/anuj-kumar-30/patient-api/internal/service/patient"
)

// Patient is the HTTP representation of a patient record, including the
// derived BMI fields.
type Patient struct {
	ID      string  `json:"id"      doc:"ID of a patient in the DB"  example:"P001"`
	Name    string  `json:"name"    doc:"Name of the patient"        example:"Ananya Sharma"`
	City    string  `json:"city"    doc:"City where the patient lives" example:"Guwahati"`
	Age     int     `json:"age"     doc:"Age of the patient"         example:"28"`
	Gender  string  `json:"gender"  doc:"Gender of the patient"      example:"female"`
	Height  float64 `json:"height"  doc:"Height in metres"           example:"1.65"`
	Weight  float64 `json:"weight"  doc:"Weight in kilograms"        example:"90.0"`
	BMI     float64 `json:"bmi"     doc:"Body mass index computed from height and weight" example:"33.06"`
	Verdict string  `json:"verdict" doc:"BMI weight category"        example:"Obese"`
}

// FromRecord builds the HTTP representation, computing BMI and verdict.
func FromRecord(p *patientsvc.Patient) Patient {
	return Patient{
		ID:      p.ID,
		Name:    p.Name,
		City:    p.City,
		Age:     p.Age,
		Gender:  p.Gender,
		Height:  p.Height,
		Weight:  p.Weight,
		BMI:     p.BMI(),
		Verdict: p.Verdict(),
	}
}
