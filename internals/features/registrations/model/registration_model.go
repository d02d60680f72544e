package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UmrohRegistration adalah data pendaftar, satu baris per submit form.
// registration_id unik per registration_date (index komposit), sequence
// duplikat akan memicu retry di service.
type UmrohRegistration struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	RegistrationID   string    `gorm:"column:registration_id;type:varchar(12);not null;uniqueIndex:idx_registrations_date_regid" json:"registration_id"`
	RegistrationDate time.Time `gorm:"column:registration_date;type:date;not null;uniqueIndex:idx_registrations_date_regid" json:"registration_date"`

	FullName   string    `gorm:"column:full_name;type:varchar(100);not null" json:"full_name"`
	Gender     string    `gorm:"column:gender;type:varchar(1);not null;check:gender IN ('L','P')" json:"gender"`
	BirthPlace string    `gorm:"column:birth_place;type:varchar(100);not null" json:"birth_place"`
	BirthDate  time.Time `gorm:"column:birth_date;type:date;not null" json:"birth_date"`
	FatherName string    `gorm:"column:father_name;type:varchar(100);not null" json:"father_name"`
	MotherName string    `gorm:"column:mother_name;type:varchar(100);not null" json:"mother_name"`

	Address    string  `gorm:"column:address;type:text;not null" json:"address"`
	City       string  `gorm:"column:city;type:varchar(100);not null" json:"city"`
	Province   string  `gorm:"column:province;type:varchar(100);not null" json:"province"`
	PostalCode *string `gorm:"column:postal_code;type:varchar(5)" json:"postal_code,omitempty"`
	Occupation string  `gorm:"column:occupation;type:varchar(100);not null" json:"occupation"`

	HasSpecialIllness  bool    `gorm:"column:has_special_illness;not null;default:false" json:"has_special_illness"`
	IllnessDetails     *string `gorm:"column:illness_details;type:text" json:"illness_details,omitempty"`
	NeedsSpecialCare   bool    `gorm:"column:needs_special_care;not null;default:false" json:"needs_special_care"`
	SpecialCareDetails *string `gorm:"column:special_care_details;type:text" json:"special_care_details,omitempty"`
	NeedsWheelchair    bool    `gorm:"column:needs_wheelchair;not null;default:false" json:"needs_wheelchair"`

	NIK                string    `gorm:"column:nik;type:varchar(16);not null" json:"nik"`
	PassportNumber     string    `gorm:"column:passport_number;type:varchar(20);not null" json:"passport_number"`
	PassportIssueDate  time.Time `gorm:"column:passport_issue_date;type:date;not null" json:"passport_issue_date"`
	PassportExpiryDate time.Time `gorm:"column:passport_expiry_date;type:date;not null" json:"passport_expiry_date"`
	PassportIssuePlace string    `gorm:"column:passport_issue_place;type:varchar(100);not null" json:"passport_issue_place"`

	Phone    string  `gorm:"column:phone;type:varchar(15);not null" json:"phone"`
	Whatsapp string  `gorm:"column:whatsapp;type:varchar(15);not null" json:"whatsapp"`
	Email    *string `gorm:"column:email;type:varchar(100)" json:"email,omitempty"`

	HasUmrahExperience bool `gorm:"column:has_umrah_experience;not null;default:false" json:"has_umrah_experience"`
	HasHajjExperience  bool `gorm:"column:has_hajj_experience;not null;default:false" json:"has_hajj_experience"`

	EmergencyContactName     string `gorm:"column:emergency_contact_name;type:varchar(100);not null" json:"emergency_contact_name"`
	EmergencyContactRelation string `gorm:"column:emergency_contact_relation;type:varchar(50);not null" json:"emergency_contact_relation"`
	EmergencyContactPhone    string `gorm:"column:emergency_contact_phone;type:varchar(15);not null" json:"emergency_contact_phone"`

	MaritalStatus   *string `gorm:"column:marital_status;type:varchar(30)" json:"marital_status,omitempty"`
	SelectedPackage string  `gorm:"column:selected_package;type:varchar(50);not null" json:"selected_package"`
	PaymentMethod   string  `gorm:"column:payment_method;type:varchar(50);not null" json:"payment_method"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UmrohRegistration) TableName() string {
	return "umroh_registrations"
}
