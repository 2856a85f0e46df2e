package models

import (
	"time"

	"github.com/lib/pq"
)

// Agency is one partner recruitment-agency application.
type Agency struct {
	ID string `gorm:"column:id;type:uuid;primaryKey" json:"id"`

	AgencyName    string `gorm:"column:agency_name;type:text" json:"agencyName"`
	LicenseNumber string `gorm:"column:license_number;type:text" json:"licenseNumber"`
	Email         string `gorm:"column:email;type:text" json:"email"`
	Phone         string `gorm:"column:phone;type:text" json:"phone"`
	Region        string `gorm:"column:region;type:text" json:"region"`
	City          string `gorm:"column:city;type:text" json:"city"`
	Address       string `gorm:"column:address;type:text" json:"address"`

	DirectorName  string `gorm:"column:director_name;type:text" json:"directorName"`
	DirectorPhone string `gorm:"column:director_phone;type:text" json:"directorPhone"`
	DirectorEmail string `gorm:"column:director_email;type:text" json:"directorEmail"`

	RecruiterCount  int            `gorm:"column:recruiter_count" json:"recruiterCount"`
	ServicesOffered pq.StringArray `gorm:"column:services_offered;type:text[]" json:"servicesOffered"`

	LicensePath          *string `gorm:"column:license_path;type:text" json:"licensePath,omitempty"`
	RegistrationCertPath *string `gorm:"column:registration_cert_path;type:text" json:"registrationCertPath,omitempty"`
	DirectorPhotoPath    *string `gorm:"column:director_photo_path;type:text" json:"directorPhotoPath,omitempty"`

	Status   Status `gorm:"column:status;type:text;index" json:"status"`
	Verified bool   `gorm:"column:verified" json:"verified"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Agency) TableName() string { return "agencies" }
