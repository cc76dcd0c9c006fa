// Package review holds the in-memory review workflow state for one
// reconciliation session: per-item status tags, multi-select sets for bulk
// actions, and the free-text/status filter. All of it is overlay state
// keyed by positional index into the sanitized result's collections; the
// result itself is never mutated.
package review

import (
	"strings"

	"github.com/google/uuid"

	"reconviewer/internal/domain"
)

// Collection identifies one of the two unmatched collections that carry
// overlay state.
type Collection string

const (
	CollectionBank   Collection = "bank"
	CollectionLedger Collection = "ledger"
)

// Status is a review annotation applied to an unmatched item.
type Status string

const (
	// StatusDefault is the untagged state, represented by absence from the
	// status map.
	StatusDefault       Status = "default"
	StatusInvestigating Status = "investigating"
	StatusCleared       Status = "cleared"
	StatusReviewed      Status = "reviewed"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll Status = "all"

// Manager tracks the review overlay for a single sanitized result.
//
// It operates purely on indices into the result's unmatched collections.
// Filtering hides rows by evaluating a predicate per index; it never
// reindexes or reorders the underlying collections, so status and
// selection maps stay valid for the lifetime of the session. State is
// result-scoped: a new result gets a fresh Manager, and the old overlay is
// discarded with it.
type Manager struct {
	sessionID    string
	result       *domain.ReconciliationResult
	statuses     map[Collection]map[int]Status
	selections   map[Collection]map[int]struct{}
	searchTerm   string
	statusFilter Status
}

// NewManager creates an empty overlay for the given sanitized result.
func NewManager(result *domain.ReconciliationResult) *Manager {
	return &Manager{
		sessionID: uuid.NewString(),
		result:    result,
		statuses: map[Collection]map[int]Status{
			CollectionBank:   {},
			CollectionLedger: {},
		},
		selections: map[Collection]map[int]struct{}{
			CollectionBank:   {},
			CollectionLedger: {},
		},
		statusFilter: StatusFilterAll,
	}
}

// SessionID returns the identifier of this review session, used for log
// correlation only.
func (m *Manager) SessionID() string {
	return m.sessionID
}

// ToggleSelection flips membership of index in the collection's selection
// set.
func (m *Manager) ToggleSelection(col Collection, index int) {
	sel := m.selections[col]
	if _, ok := sel[index]; ok {
		delete(sel, index)
	} else {
		sel[index] = struct{}{}
	}
}

// SelectAllVisible sets the collection's selection to exactly the given
// visible indices. If the current selection already equals that set (and
// is non-empty) it is cleared instead, giving deselect-all semantics on a
// repeat invocation. The caller passes the currently filtered indices so
// bulk-select respects active filters.
func (m *Manager) SelectAllVisible(col Collection, visible []int) {
	sel := m.selections[col]
	if len(sel) > 0 && len(sel) == len(visible) {
		same := true
		for _, i := range visible {
			if _, ok := sel[i]; !ok {
				same = false
				break
			}
		}
		if same {
			m.selections[col] = map[int]struct{}{}
			return
		}
	}
	next := make(map[int]struct{}, len(visible))
	for _, i := range visible {
		next[i] = struct{}{}
	}
	m.selections[col] = next
}

// ApplyBulkStatus tags every given index with status, removing entries when
// status is StatusDefault, then clears the collection's selection set. A
// bulk action always ends the selection.
func (m *Manager) ApplyBulkStatus(col Collection, indices []int, status Status) {
	statuses := m.statuses[col]
	for _, i := range indices {
		if status == StatusDefault {
			delete(statuses, i)
		} else {
			statuses[i] = status
		}
	}
	m.selections[col] = map[int]struct{}{}
}

// ClearStatus removes a single status entry. Clearing an index with no
// entry is a no-op. Selection is unaffected.
func (m *Manager) ClearStatus(col Collection, index int) {
	delete(m.statuses[col], index)
}

// StatusOf returns the effective status of an item: its map entry, or
// StatusDefault when untagged.
func (m *Manager) StatusOf(col Collection, index int) Status {
	if s, ok := m.statuses[col][index]; ok {
		return s
	}
	return StatusDefault
}

// IsSelected reports whether index is in the collection's selection set.
func (m *Manager) IsSelected(col Collection, index int) bool {
	_, ok := m.selections[col][index]
	return ok
}

// SelectionSnapshot returns a copy of the collection's selection set, taken
// at the moment of the call. Exports use this so a concurrent-looking
// sequence of review actions cannot produce a half-updated artifact.
func (m *Manager) SelectionSnapshot(col Collection) map[int]struct{} {
	snapshot := make(map[int]struct{}, len(m.selections[col]))
	for i := range m.selections[col] {
		snapshot[i] = struct{}{}
	}
	return snapshot
}

// SelectionCount returns the size of the collection's selection set.
func (m *Manager) SelectionCount(col Collection) int {
	return len(m.selections[col])
}

// SetSearchTerm sets the free-text filter term.
func (m *Manager) SetSearchTerm(term string) {
	m.searchTerm = term
}

// SetStatusFilter sets the status filter; StatusFilterAll disables it.
func (m *Manager) SetStatusFilter(status Status) {
	m.statusFilter = status
}

// VisibleUnmatched returns the indices of the collection's items that pass
// the active filters, in collection order.
func (m *Manager) VisibleUnmatched(col Collection) []int {
	items := m.unmatched(col)
	visible := make([]int, 0, len(items))
	for i, tx := range items {
		if !m.matchesText(tx) {
			continue
		}
		if m.statusFilter != StatusFilterAll && m.StatusOf(col, i) != m.statusFilter {
			continue
		}
		visible = append(visible, i)
	}
	return visible
}

// VisibleMatches returns the indices of matched pairs that pass the
// free-text filter. Status tagging does not apply to matches, so the
// status filter is ignored here.
func (m *Manager) VisibleMatches() []int {
	visible := make([]int, 0, len(m.result.MatchedTransactions))
	for i, pair := range m.result.MatchedTransactions {
		if m.pairMatchesText(pair) {
			visible = append(visible, i)
		}
	}
	return visible
}

func (m *Manager) unmatched(col Collection) []domain.Transaction {
	if col == CollectionLedger {
		return m.result.UnmatchedLedgerEntries
	}
	return m.result.UnmatchedBankTransactions
}

// matchesText implements the free-text predicate: an empty term matches
// everything; otherwise the term must be a case-insensitive substring of
// the description, or a substring of the raw date string, or a substring
// of the amount's decimal-string representation.
func (m *Manager) matchesText(tx domain.Transaction) bool {
	if m.searchTerm == "" {
		return true
	}
	term := strings.ToLower(m.searchTerm)
	return strings.Contains(strings.ToLower(tx.Description), term) ||
		strings.Contains(tx.Date, m.searchTerm) ||
		strings.Contains(tx.Amount.String(), m.searchTerm)
}

func (m *Manager) pairMatchesText(pair domain.MatchedPair) bool {
	if m.searchTerm == "" {
		return true
	}
	// Either leg's description or date can match; the amount predicate is
	// evaluated against the bank leg only, mirroring the matched total.
	return m.matchesText(pair.BankTransaction) ||
		strings.Contains(strings.ToLower(pair.LedgerTransaction.Description), strings.ToLower(m.searchTerm)) ||
		strings.Contains(pair.LedgerTransaction.Date, m.searchTerm)
}
