package store

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/chat-service/internal/model"
)

// Snapshot is an immutable copy of the loaded window, captured before a
// mutation so the caller can roll the store back atomically.
type Snapshot []model.Message

// Store holds the ordered, deduplicated message window of one open
// conversation view. It is the single source of UI truth for that view.
// Callers are expected to serialize access; the session owning the store
// does so under its own lock. The store never performs I/O itself, so the
// owner is free to hold its lock across any mutation.
type Store struct {
	selfID   uuid.UUID
	messages []model.Message
}

func New(selfID uuid.UUID) *Store {
	return &Store{
		selfID: selfID,
	}
}

func (s *Store) Len() int {
	return len(s.messages)
}

func (s *Store) Messages() model.MessageList {
	return append(model.MessageList(nil), s.messages...)
}

func (s *Store) Snapshot() Snapshot {
	return append(Snapshot(nil), s.messages...)
}

// Rollback restores the window captured by a prior Snapshot.
func (s *Store) Rollback(snap Snapshot) {
	s.messages = append([]model.Message(nil), snap...)
}

// insert keeps the window non-decreasing by SentAt; equal timestamps keep
// arrival order.
func (s *Store) insert(m model.Message) {
	idx := sort.Search(len(s.messages), func(i int) bool {
		return s.messages[i].SentAt.After(m.SentAt)
	})
	s.messages = append(s.messages, model.Message{})
	copy(s.messages[idx+1:], s.messages[idx:])
	s.messages[idx] = m
}

func (s *Store) indexOf(id string) int {
	for i := range s.messages {
		if s.messages[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

// Append adds a message unconditionally, used for optimistic entries that
// cannot collide with anything already loaded.
func (s *Store) Append(m model.Message) {
	s.insert(m)
}

// Replace swaps the optimistic entry for the confirmed record in the same
// slot. The confirmed SentAt is authoritative, so the window is re-sorted
// if the server timestamp landed out of order.
func (s *Store) Replace(optimisticID string, confirmed model.Message) bool {
	if s.indexOf(confirmed.ID) >= 0 {
		// The push stream delivered the confirmed row while the send was
		// still in flight. Dropping the optimistic twin completes the swap
		// without duplicating the id.
		s.Remove(optimisticID)
		return true
	}

	idx := s.indexOf(optimisticID)
	if idx < 0 {
		return false
	}

	s.messages[idx] = confirmed
	sort.SliceStable(s.messages, func(i, j int) bool {
		return s.messages[i].SentAt.Before(s.messages[j].SentAt)
	})
	return true
}

func (s *Store) Remove(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}

	s.messages = append(s.messages[:idx], s.messages[idx+1:]...)
	return true
}

// Merge is the deduplication gate for externally delivered rows: a message
// whose id is already present is discarded. This is the sole defense against
// the push stream racing the optimistic-replace path.
func (s *Store) Merge(m model.Message) bool {
	if s.indexOf(m.ID) >= 0 {
		return false
	}

	s.insert(m)
	return true
}

// Overwrite updates the matching message in place, never reordering. Used
// for row-updated events such as a read receipt from the other side.
func (s *Store) Overwrite(m model.Message) bool {
	idx := s.indexOf(m.ID)
	if idx < 0 {
		return false
	}

	s.messages[idx] = m
	return true
}

// PrependHistory inserts an older chronological page below the current
// window, skipping ids already loaded. Returns the number of rows added.
func (s *Store) PrependHistory(older []model.Message) int {
	fresh := make([]model.Message, 0, len(older))
	for _, m := range older {
		if s.indexOf(m.ID) < 0 {
			fresh = append(fresh, m)
		}
	}
	if len(fresh) == 0 {
		return 0
	}

	s.messages = append(fresh, s.messages...)
	return len(fresh)
}

// MarkReadLocally stamps every unread message from the other participant
// and returns the pre-mutation snapshot for rollback. The unread counter
// is not touched here: the read-receipt coordinator adjusts it itself.
func (s *Store) MarkReadLocally(readAt time.Time) (Snapshot, int) {
	snap := s.Snapshot()

	marked := 0
	for i := range s.messages {
		if s.messages[i].SenderID != s.selfID && s.messages[i].ReadAt == nil {
			ts := readAt
			s.messages[i].ReadAt = &ts
			marked++
		}
	}

	return snap, marked
}

// UnreadCount is the unread boundary within the loaded window.
func (s *Store) UnreadCount() int {
	count := 0
	for i := range s.messages {
		if s.messages[i].SenderID != s.selfID && s.messages[i].ReadAt == nil {
			count++
		}
	}
	return count
}
