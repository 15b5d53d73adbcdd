package models

import (
	"encoding/json"
)

// ContactPhonePlaceholder is stored when the source provides no contact
// email. Every other optional field nils out instead; this single field
// keeps the source system's placeholder behavior.
const ContactPhonePlaceholder = "not provided"

// JobPosting is one posting as persisted in jobs_104. JobID is the primary
// key; all other pointer fields are nullable columns.
type JobPosting struct {
	JobID                 string  `json:"job_id"`
	UpdateDate            *string `json:"update_date"`
	Title                 *string `json:"title"`
	Description           *string `json:"description"`
	Salary                *string `json:"salary"`
	WorkType              *string `json:"work_type"`
	WorkTime              *string `json:"work_time"`
	Location              *string `json:"location"`
	Degree                *string `json:"degree"`
	Department            *string `json:"department"`
	WorkingExperience     *string `json:"working_experience"`
	QualificationRequired *string `json:"qualification_required"`
	QualificationBonus    *string `json:"qualification_bonus"`
	CompanyID             *string `json:"company_id"`
	CompanyName           *string `json:"company_name"`
	CompanyAddress        *string `json:"company_address"`
	ContactPerson         *string `json:"contact_person"`
	ContactPhone          string  `json:"contact_phone"`
}

func (p JobPosting) MarshalBinary() ([]byte, error) {
	return json.Marshal(p)
}

func (p *JobPosting) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}
