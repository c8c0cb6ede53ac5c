package config

import (
	"CivicConnectAPI/internal/constant"
	"slices"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("report_category", validateReportCategory)
	_ = v.RegisterValidation("report_urgency", validateReportUrgency)
	_ = v.RegisterValidation("report_status", validateReportStatus)
	return v
}

func validateReportCategory(fl validator.FieldLevel) bool {
	return slices.Contains(constant.ReportCategories, fl.Field().String())
}

func validateReportUrgency(fl validator.FieldLevel) bool {
	return slices.Contains(constant.ReportUrgencies, fl.Field().String())
}

func validateReportStatus(fl validator.FieldLevel) bool {
	return slices.Contains(constant.ReportStatuses, fl.Field().String())
}
