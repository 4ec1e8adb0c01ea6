package patient

import (
	"context"
	"errors"
	"math"
)

// Service errors
var (
	ErrNotFound      = errors.New("patient not found")
	ErrAlreadyExists = errors.New("patient already exists")
)

// BMI verdict thresholds (WHO categories).
const (
	bmiUnderweight = 18.5
	bmiNormal      = 25
	bmiOverweight  = 30
)

// Patient represents a stored patient record. Height is in metres, weight in
// kilograms; BMI and the verdict are derived, never stored.
type Patient struct {
	ID     string
	Name   string
	City   string
	Age    int
	Gender string
	Height float64
	Weight float64
}

// BMI returns the body mass index rounded to two decimals.
func (p Patient) BMI() float64 {
	if p.Height <= 0 {
		return 0
	}
	return math.Round(p.Weight/(p.Height*p.Height)*100) / 100
}

// Verdict classifies the BMI into a weight category.
func (p Patient) Verdict() string {
	bmi := p.BMI()
	switch {
	case bmi < bmiUnderweight:
		return "Underweight"
	case bmi < bmiNormal:
		return "Normal"
	case bmi < bmiOverweight:
		return "Overweight"
	default:
		return "Obese"
	}
}

// CreateParams for creating a patient record.
type CreateParams struct {
	Name   string
	City   string
	Age    int
	Gender string
	Height float64
	Weight float64
}

// UpdateParams for partially updating a patient record.
type UpdateParams struct {
	Name   *string
	City   *string
	Age    *int
	Gender *string
	Height *float64
	Weight *float64
}

// Service defines patient record operations.
type Service interface {
	List(ctx context.Context) (map[string]Patient, error)
	Get(ctx context.Context, id string) (*Patient, error)
	Create(ctx context.Context, id string, params CreateParams) (*Patient, error)
	Update(ctx context.Context, id string, params UpdateParams) (*Patient, error)
	Delete(ctx context.Context, id string) error
}
