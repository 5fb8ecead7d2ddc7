package history

// RecentList names the list of recently selected theme ids
const RecentList = "recent_themes"

// Recent is a bounded most-recent-first list of theme ids
type Recent struct {
	ids     []string
	maxSize int
}

// NewRecent creates an empty list holding at most maxSize ids
func NewRecent(maxSize int) *Recent {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &Recent{maxSize: maxSize}
}

// Add moves id to the front, dropping the oldest entry when full
func (r *Recent) Add(id string) {
	if id == "" {
		return
	}
	out := make([]string, 0, len(r.ids)+1)
	out = append(out, id)
	for _, existing := range r.ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	if len(out) > r.maxSize {
		out = out[:r.maxSize]
	}
	r.ids = out
}

// IDs returns a copy of the list, newest first
func (r *Recent) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Last returns the most recent id, or ""
func (r *Recent) Last() string {
	if len(r.ids) == 0 {
		return ""
	}
	return r.ids[0]
}

// LoadRecent reads the recent list through the manager
func (m *Manager) LoadRecent(maxSize int) (*Recent, error) {
	ids, err := m.Load(RecentList)
	if err != nil {
		return nil, err
	}
	r := NewRecent(maxSize)
	for i := len(ids) - 1; i >= 0; i-- {
		r.Add(ids[i])
	}
	return r, nil
}

// SaveRecent writes the recent list through the manager
func (m *Manager) SaveRecent(r *Recent) error {
	return m.Save(RecentList, r.IDs())
}
