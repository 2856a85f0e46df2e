package models

import (
	"time"

	"gorm.io/datatypes"
)

// Employer is one hiring-company application. Verified is independent of
// Status and is only mutated by the dedicated verify action.
type Employer struct {
	ID string `gorm:"column:id;type:uuid;primaryKey" json:"id"`

	CompanyName  string `gorm:"column:company_name;type:text" json:"companyName"`
	CompanyEmail string `gorm:"column:company_email;type:text" json:"companyEmail"`
	CompanyPhone string `gorm:"column:company_phone;type:text" json:"companyPhone"`
	Country      string `gorm:"column:country;type:text" json:"country"`
	City         string `gorm:"column:city;type:text" json:"city"`
	Address      string `gorm:"column:address;type:text" json:"address"`

	ContactName  string `gorm:"column:contact_name;type:text" json:"contactName"`
	ContactTitle string `gorm:"column:contact_title;type:text" json:"contactTitle"`
	ContactPhone string `gorm:"column:contact_phone;type:text" json:"contactPhone"`
	ContactEmail string `gorm:"column:contact_email;type:text" json:"contactEmail"`

	Sector        string `gorm:"column:sector;type:text" json:"sector"`
	EmployeeCount int    `gorm:"column:employee_count" json:"employeeCount"`

	// Free-form hiring history submitted by the wizard, e.g. a list of
	// {year, role, count} objects. Stored as-is.
	HiringHistory datatypes.JSON `gorm:"column:hiring_history;type:jsonb" json:"hiringHistory,omitempty"`

	LicensePath          *string `gorm:"column:license_path;type:text" json:"licensePath,omitempty"`
	RegistrationCertPath *string `gorm:"column:registration_cert_path;type:text" json:"registrationCertPath,omitempty"`
	ContactPhotoPath     *string `gorm:"column:contact_photo_path;type:text" json:"contactPhotoPath,omitempty"`

	Status   Status `gorm:"column:status;type:text;index" json:"status"`
	Verified bool   `gorm:"column:verified" json:"verified"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Employer) TableName() string { return "employers" }
