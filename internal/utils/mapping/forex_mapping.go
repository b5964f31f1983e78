package mapping

import (
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	"github.com/moneta-app/moneta_backend/internal/models"
)

func ToModelEntryFxRate(r domain.EntryFxRate) models.EntryFxRate {
	return models.EntryFxRate{
		EntryID:            r.EntryID,
		BaseCurrencyCode:   r.BaseCurrencyCode,
		TargetCurrencyCode: r.TargetCurrencyCode,
		Rate:               r.Rate,
		AuditFields:        ToModelAuditFields(r.AuditFields),
	}
}

func ToDomainEntryFxRate(r models.EntryFxRate) domain.EntryFxRate {
	return domain.EntryFxRate{
		EntryID:            r.EntryID,
		BaseCurrencyCode:   r.BaseCurrencyCode,
		TargetCurrencyCode: r.TargetCurrencyCode,
		Rate:               r.Rate,
		AuditFields:        ToDomainAuditFields(r.AuditFields),
	}
}

func ToModelRateObservation(o domain.RateObservation) models.RateObservation {
	return models.RateObservation{
		ObservationID:      o.ObservationID,
		BaseCurrencyCode:   o.BaseCurrencyCode,
		TargetCurrencyCode: o.TargetCurrencyCode,
		Rate:               o.Rate,
		CreatedAt:          o.CreatedAt,
	}
}

func ToDomainRateObservation(o models.RateObservation) domain.RateObservation {
	return domain.RateObservation{
		ObservationID:      o.ObservationID,
		BaseCurrencyCode:   o.BaseCurrencyCode,
		TargetCurrencyCode: o.TargetCurrencyCode,
		Rate:               o.Rate,
		CreatedAt:          o.CreatedAt,
	}
}
