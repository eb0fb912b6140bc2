// Package thread rebuilds two-level comment threads from flat API pages.
package thread

import "github.com/CrestNiraj12/terminalwager/domain"

// Build groups comments into root threads. Roots and replies keep API
// order. A reply whose parent is not a root in the batch (a truncated page,
// or a reply to a reply) is dropped, never promoted. Duplicate IDs keep the
// first occurrence.
func Build(comments []domain.Comment) []domain.Thread {
	var roots []domain.Comment
	replies := make(map[string][]domain.Comment)
	seen := make(map[string]struct{}, len(comments))
	for _, c := range comments {
		if c.ID != "" {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
		}
		if c.IsReply() {
			replies[c.ParentID] = append(replies[c.ParentID], c)
			continue
		}
		roots = append(roots, c)
	}

	threads := make([]domain.Thread, 0, len(roots))
	for _, r := range roots {
		rs := replies[r.ID]
		if rs == nil {
			rs = []domain.Comment{}
		}
		threads = append(threads, domain.Thread{Root: r, Replies: rs})
	}
	return threads
}

// Insert adds one comment to an existing tree under the same rules as
// Build. It reports false when the comment is an orphan.
func Insert(threads []domain.Thread, c domain.Comment) ([]domain.Thread, bool) {
	if !c.IsReply() {
		return append(threads, domain.Thread{Root: c, Replies: []domain.Comment{}}), true
	}
	for i := range threads {
		if threads[i].Root.ID == c.ParentID {
			threads[i].Replies = append(threads[i].Replies, c)
			return threads, true
		}
	}
	return threads, false
}

// Count returns the number of comments rendered by the tree.
func Count(threads []domain.Thread) int {
	n := 0
	for _, t := range threads {
		n += 1 + len(t.Replies)
	}
	return n
}

// Flatten lists the tree in display order: each root followed by its replies.
func Flatten(threads []domain.Thread) []domain.Comment {
	out := make([]domain.Comment, 0, Count(threads))
	for _, t := range threads {
		out = append(out, t.Root)
		out = append(out, t.Replies...)
	}
	return out
}
