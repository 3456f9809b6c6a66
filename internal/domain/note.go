package domain

type NoteKind string

const (
	NoteKind_DateAdjusted    NoteKind = "DATE_ADJUSTED"
	NoteKind_ScheduleShrunk  NoteKind = "SCHEDULE_SHRUNK"
	NoteKind_SingleFallback  NoteKind = "SINGLE_CONTRIBUTION_FALLBACK"
	NoteKind_UnadjustedClose NoteKind = "UNADJUSTED_CLOSE"
)

// Note is an advisory attached to a result - something the caller
// should know about (a snapped date, a shrunk schedule) that is not
// an error.
type Note struct {
	Kind    NoteKind `json:"kind"`
	Message string   `json:"message"`
}
