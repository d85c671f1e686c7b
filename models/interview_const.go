package models

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
	InterviewStatusPending   InterviewStatus = "pending"
)

var interviewStatusHumanName = map[InterviewStatus]string{
	InterviewStatusScheduled: "Scheduled",
	InterviewStatusCompleted: "Completed",
	InterviewStatusCancelled: "Cancelled",
	InterviewStatusPending:   "Pending",
}

func (r InterviewStatus) IsValid() bool {
	_, ok := interviewStatusHumanName[r]
	return ok
}

func (r InterviewStatus) ToHuman() string {
	if human, exist := interviewStatusHumanName[r]; exist {
		return human
	}
	return string(r)
}

type InterviewType string

const (
	InterviewTypePhone      InterviewType = "phone"
	InterviewTypeVideo      InterviewType = "video"
	InterviewTypeOnsite     InterviewType = "onsite"
	InterviewTypeTechnical  InterviewType = "technical"
	InterviewTypeBehavioral InterviewType = "behavioral"
)

var interviewTypeHumanName = map[InterviewType]string{
	InterviewTypePhone:      "Phone",
	InterviewTypeVideo:      "Video",
	InterviewTypeOnsite:     "Onsite",
	InterviewTypeTechnical:  "Technical",
	InterviewTypeBehavioral: "Behavioral",
}

func (r InterviewType) IsValid() bool {
	_, ok := interviewTypeHumanName[r]
	return ok
}

func (r InterviewType) ToHuman() string {
	if human, exist := interviewTypeHumanName[r]; exist {
		return human
	}
	return string(r)
}

type RecordType string

const (
	RecordTypeNote         RecordType = "note" // manual note
	RecordTypeStatusChange RecordType = "status_change"
	RecordTypeFieldChange  RecordType = "field_change" // written by the update path
	RecordTypeCreated      RecordType = "created"      // written by the create path
	RecordTypeEmail        RecordType = "email"
	RecordTypeCall         RecordType = "call"
	RecordTypeOther        RecordType = "other"
)

var recordTypes = map[RecordType]bool{
	RecordTypeNote:         true,
	RecordTypeStatusChange: true,
	RecordTypeFieldChange:  true,
	RecordTypeCreated:      true,
	RecordTypeEmail:        true,
	RecordTypeCall:         true,
	RecordTypeOther:        true,
}

func (r RecordType) IsValid() bool {
	return recordTypes[r]
}
