package api

import (
	"github.com/NJR201-job-market-analysis/collector-104/internal/models"
)

// postingEnvelope mirrors the ajax/content response. Every section is
// optional; the accessors below tolerate a nil receiver so a missing
// section yields nil fields instead of a panic.
type postingEnvelope struct {
	Data *postingData `json:"data"`
}

type postingData struct {
	CustSwitch string            `json:"custSwitch"`
	Header     *postingHeader    `json:"header"`
	JobDetail  *postingDetail    `json:"jobDetail"`
	Condition  *postingCondition `json:"condition"`
	Welfare    *postingWelfare   `json:"welfare"`
	Company    *postingCompany   `json:"company"`
	Contact    *postingContact   `json:"contact"`
}

type postingHeader struct {
	AppearDate *string `json:"appearDate"`
	JobName    *string `json:"jobName"`
	CustNo     *string `json:"custNo"`
	CustName   *string `json:"custName"`
}

type postingDetail struct {
	JobDescription *string `json:"jobDescription"`
	Salary         *string `json:"salary"`
	WorkType       *string `json:"workType"`
	WorkPeriod     *string `json:"workPeriod"`
	AddressRegion  *string `json:"addressRegion"`
	Department     *string `json:"department"`
}

type postingCondition struct {
	Edu     *string `json:"edu"`
	WorkExp *string `json:"workExp"`
	Other   *string `json:"other"`
}

type postingWelfare struct {
	Welfare *string `json:"welfare"`
}

type postingCompany struct {
	Address *string `json:"address"`
}

type postingContact struct {
	HrName *string `json:"hrName"`
	Email  *string `json:"email"`
}

func (d *postingData) empty() bool {
	return d == nil || *d == (postingData{})
}

func (d *postingData) closed() bool {
	return d != nil && d.CustSwitch == "off"
}

func (h *postingHeader) appearDate() *string {
	if h == nil {
		return nil
	}
	return h.AppearDate
}

func (h *postingHeader) jobName() *string {
	if h == nil {
		return nil
	}
	return h.JobName
}

func (h *postingHeader) custNo() *string {
	if h == nil {
		return nil
	}
	return h.CustNo
}

func (h *postingHeader) custName() *string {
	if h == nil {
		return nil
	}
	return h.CustName
}

func (j *postingDetail) jobDescription() *string {
	if j == nil {
		return nil
	}
	return j.JobDescription
}

func (j *postingDetail) salary() *string {
	if j == nil {
		return nil
	}
	return j.Salary
}

func (j *postingDetail) workType() *string {
	if j == nil {
		return nil
	}
	return j.WorkType
}

func (j *postingDetail) workPeriod() *string {
	if j == nil {
		return nil
	}
	return j.WorkPeriod
}

func (j *postingDetail) addressRegion() *string {
	if j == nil {
		return nil
	}
	return j.AddressRegion
}

func (j *postingDetail) department() *string {
	if j == nil {
		return nil
	}
	return j.Department
}

func (c *postingCondition) edu() *string {
	if c == nil {
		return nil
	}
	return c.Edu
}

func (c *postingCondition) workExp() *string {
	if c == nil {
		return nil
	}
	return c.WorkExp
}

func (c *postingCondition) other() *string {
	if c == nil {
		return nil
	}
	return c.Other
}

func (w *postingWelfare) welfare() *string {
	if w == nil {
		return nil
	}
	return w.Welfare
}

func (c *postingCompany) address() *string {
	if c == nil {
		return nil
	}
	return c.Address
}

func (c *postingContact) hrName() *string {
	if c == nil {
		return nil
	}
	return c.HrName
}

// contactPhoneOrPlaceholder is the one field that does not nil out when the
// source omits it. The upstream system stores the contact email under the
// phone column and substitutes a placeholder when missing; kept verbatim.
func (c *postingContact) contactPhoneOrPlaceholder() string {
	if c == nil || c.Email == nil {
		return models.ContactPhonePlaceholder
	}
	return *c.Email
}

func (d *postingData) toJobPosting(jobID string) *models.JobPosting {
	return &models.JobPosting{
		JobID:                 jobID,
		UpdateDate:            d.Header.appearDate(),
		Title:                 d.Header.jobName(),
		Description:           d.JobDetail.jobDescription(),
		Salary:                d.JobDetail.salary(),
		WorkType:              d.JobDetail.workType(),
		WorkTime:              d.JobDetail.workPeriod(),
		Location:              d.JobDetail.addressRegion(),
		Degree:                d.Condition.edu(),
		Department:            d.JobDetail.department(),
		WorkingExperience:     d.Condition.workExp(),
		QualificationRequired: d.Condition.other(),
		QualificationBonus:    d.Welfare.welfare(),
		CompanyID:             d.Header.custNo(),
		CompanyName:           d.Header.custName(),
		CompanyAddress:        d.Company.address(),
		ContactPerson:         d.Contact.hrName(),
		ContactPhone:          d.Contact.contactPhoneOrPlaceholder(),
	}
}
