package bustime

type AffectsKind string

const (
	AffectsKindStop  AffectsKind = "stop"
	AffectsKindRoute AffectsKind = "route"
)

// ServiceBulletin is a rider-facing service notice.
type ServiceBulletin struct {
	Title        string
	DetailsFull  string
	DetailsShort string
	Priority     string

	// Affects lists the stops and routes the bulletin is scoped to, in
	// the order the API reported them. An empty list means the bulletin
	// is not scoped to any particular stop or route.
	Affects []AffectedService
}

// AffectedService identifies one stop or route named by a bulletin.
type AffectedService struct {
	Kind AffectsKind
	ID   string
}
