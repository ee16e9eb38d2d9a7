package dto

import "mm-voicenote-be/internal/entity"

type GenerateReportRequest struct {
	Period entity.ReportPeriod `json:"period" validate:"required,oneof=daily weekly monthly"`
}

type GenerateReportResponse struct {
	Report *entity.Report `json:"report"`
}

type ListReportsResponse struct {
	Reports []*entity.Report `json:"reports"`
}
