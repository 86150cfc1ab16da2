package create_consultation

import (
	bookConsultation "github.com/astroya/consultation-service/internal/usecase/book_consultation"
	"github.com/astroya/consultation-service/pkg/types"
)

// CreateConsultationRequest HTTP request model
type CreateConsultationRequest struct {
	Date           string  `json:"date"` // "2025-06-11"
	Time           string  `json:"time"` // "10:00"
	CompanyName    string  `json:"companyName"`
	ClientEmail    string  `json:"clientEmail"`
	CompanyWebsite *string `json:"companyWebsite,omitempty"`
	MainChallenge  string  `json:"mainChallenge"`
	TargetAudience string  `json:"targetAudience"`

	ServiceLandingPage bool `json:"serviceLandingPage"`
	ServiceSEO         bool `json:"serviceSeo"`
	ServiceMaintenance bool `json:"serviceMaintenance"`
}

// ConsultationResponse HTTP response model
type ConsultationResponse struct {
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	CompanyName      string   `json:"companyName"`
	ClientEmail      string   `json:"clientEmail"`
	SelectedServices []string `json:"selectedServices"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом даты и времени)
func (r *CreateConsultationRequest) ToUseCaseRequest() (*bookConsultation.Request, error) {
	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, err
	}

	t, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &bookConsultation.Request{
		Date:               date,
		Time:               t,
		CompanyName:        r.CompanyName,
		ClientEmail:        r.ClientEmail,
		CompanyWebsite:     r.CompanyWebsite,
		MainChallenge:      r.MainChallenge,
		TargetAudience:     r.TargetAudience,
		ServiceLandingPage: r.ServiceLandingPage,
		ServiceSEO:         r.ServiceSEO,
		ServiceMaintenance: r.ServiceMaintenance,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookConsultation.Response) *ConsultationResponse {
	return &ConsultationResponse{
		Date:             resp.Date.String(),
		Time:             resp.Time.String(),
		CompanyName:      resp.CompanyName,
		ClientEmail:      resp.ClientEmail,
		SelectedServices: resp.SelectedServices,
	}
}
