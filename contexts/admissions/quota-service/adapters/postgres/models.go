package postgresadapter

import (
	"time"

	"emprende/contexts/admissions/quota-service/domain/entities"
)

type quotaConfigModel struct {
	ConfigID      string    `gorm:"column:config_id;primaryKey"`
	ConvocationID string    `gorm:"column:convocation_id;index:idx_quota_configs_convocation"`
	Mode          string    `gorm:"column:mode"`
	GlobalMax     *int      `gorm:"column:global_max"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (quotaConfigModel) TableName() string { return "quota_configs" }

func quotaConfigModelFromEntity(config entities.QuotaConfig) quotaConfigModel {
	return quotaConfigModel{
		ConfigID:      config.ConfigID,
		ConvocationID: config.ConvocationID,
		Mode:          config.Mode,
		GlobalMax:     config.GlobalMax,
		CreatedAt:     config.CreatedAt,
	}
}

func (m quotaConfigModel) toEntity() entities.QuotaConfig {
	return entities.QuotaConfig{
		ConfigID:      m.ConfigID,
		ConvocationID: m.ConvocationID,
		Mode:          m.Mode,
		GlobalMax:     m.GlobalMax,
		CreatedAt:     m.CreatedAt,
	}
}

type municipalityQuotaModel struct {
	Slug        string    `gorm:"column:slug;primaryKey"`
	Subregion   string    `gorm:"column:subregion"`
	MaxCapacity int       `gorm:"column:max_capacity"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (municipalityQuotaModel) TableName() string { return "municipality_quotas" }

func municipalityQuotaModelFromEntity(quota entities.MunicipalityQuota) municipalityQuotaModel {
	return municipalityQuotaModel{
		Slug:        quota.Slug,
		Subregion:   quota.Subregion,
		MaxCapacity: quota.MaxCapacity,
		CreatedAt:   quota.CreatedAt,
		UpdatedAt:   quota.UpdatedAt,
	}
}

func (m municipalityQuotaModel) toEntity() entities.MunicipalityQuota {
	return entities.MunicipalityQuota{
		Slug:        m.Slug,
		Subregion:   m.Subregion,
		MaxCapacity: m.MaxCapacity,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type applicantModel struct {
	ApplicantID   string    `gorm:"column:applicant_id;primaryKey"`
	FirstName     string    `gorm:"column:first_name"`
	LastName      string    `gorm:"column:last_name"`
	Email         string    `gorm:"column:email;uniqueIndex:idx_applicants_email_convocation"`
	Municipality  string    `gorm:"column:municipality;index:idx_applicants_municipality"`
	VentureName   string    `gorm:"column:venture_name"`
	ConvocationID string    `gorm:"column:convocation_id;uniqueIndex:idx_applicants_email_convocation"`
	AccountStatus string    `gorm:"column:account_status;index:idx_applicants_status"`
	RegisteredAt  time.Time `gorm:"column:registered_at"`
}

func (applicantModel) TableName() string { return "applicants" }

func applicantModelFromEntity(applicant entities.Applicant) applicantModel {
	return applicantModel{
		ApplicantID:   applicant.ApplicantID,
		FirstName:     applicant.FirstName,
		LastName:      applicant.LastName,
		Email:         applicant.Email,
		Municipality:  applicant.Municipality,
		VentureName:   applicant.VentureName,
		ConvocationID: applicant.ConvocationID,
		AccountStatus: applicant.AccountStatus,
		RegisteredAt:  applicant.RegisteredAt,
	}
}

func (m applicantModel) toEntity() entities.Applicant {
	return entities.Applicant{
		ApplicantID:   m.ApplicantID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		Municipality:  m.Municipality,
		VentureName:   m.VentureName,
		ConvocationID: m.ConvocationID,
		AccountStatus: m.AccountStatus,
		RegisteredAt:  m.RegisteredAt,
	}
}
