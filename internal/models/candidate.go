package models

import "time"

// Candidate is one job-seeker application. File path fields hold relative
// paths under uploads/candidates/ and are nil when no file was uploaded; the
// path is not integrity-checked against the file's existence.
type Candidate struct {
	ID string `gorm:"column:id;type:uuid;primaryKey" json:"id"`

	FirstName   string `gorm:"column:first_name;type:text" json:"firstName"`
	LastName    string `gorm:"column:last_name;type:text" json:"lastName"`
	Gender      string `gorm:"column:gender;type:text" json:"gender"`
	DateOfBirth string `gorm:"column:date_of_birth;type:text" json:"dateOfBirth"`
	Phone       string `gorm:"column:phone;type:text" json:"phone"`
	Email       string `gorm:"column:email;type:text" json:"email"`
	Region      string `gorm:"column:region;type:text" json:"region"`
	City        string `gorm:"column:city;type:text" json:"city"`

	PassportNumber string `gorm:"column:passport_number;type:text" json:"passportNumber"`
	PassportIssued string `gorm:"column:passport_issued;type:text" json:"passportIssued"`
	PassportExpiry string `gorm:"column:passport_expiry;type:text" json:"passportExpiry"`

	PreferredCountry string `gorm:"column:preferred_country;type:text" json:"preferredCountry"`
	PreferredJob     string `gorm:"column:preferred_job;type:text" json:"preferredJob"`
	ExpectedSalary   string `gorm:"column:expected_salary;type:text" json:"expectedSalary"`
	Experience       string `gorm:"column:experience;type:text" json:"experience"`

	// Skill flags, a fixed checklist on the registration form.
	SkillCooking   bool `gorm:"column:skill_cooking" json:"skillCooking"`
	SkillCleaning  bool `gorm:"column:skill_cleaning" json:"skillCleaning"`
	SkillChildcare bool `gorm:"column:skill_childcare" json:"skillChildcare"`
	SkillElderCare bool `gorm:"column:skill_elder_care" json:"skillElderCare"`
	SkillDriving   bool `gorm:"column:skill_driving" json:"skillDriving"`
	SkillGardening bool `gorm:"column:skill_gardening" json:"skillGardening"`

	PassportPath *string `gorm:"column:passport_path;type:text" json:"passportPath,omitempty"`
	PhotoPath    *string `gorm:"column:photo_path;type:text" json:"photoPath,omitempty"`
	MedicalPath  *string `gorm:"column:medical_path;type:text" json:"medicalPath,omitempty"`
	PolicePath   *string `gorm:"column:police_path;type:text" json:"policePath,omitempty"`

	Status Status `gorm:"column:status;type:text;index" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Candidate) TableName() string { return "candidates" }
