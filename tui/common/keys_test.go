package common

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_HasCriticalBindings(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name    string
		binding key.Binding
		want    string
	}{
		{"hints", km.ToggleHints, "?"},
		{"force quit", km.ForceQuit, "ctrl+c"},
		{"like", km.Like, "l"},
		{"repost", km.Repost, "R"},
		{"bookmark", km.Bookmark, "b"},
		{"follow", km.Follow, "f"},
		{"load more", km.LoadMore, "m"},
	}
	for _, tt := range tests {
		keys := tt.binding.Keys()
		if len(keys) == 0 || keys[0] != tt.want {
			t.Fatalf("%s: expected %q binding, got %v", tt.name, tt.want, keys)
		}
	}
}

func TestDefaultKeyMap_LikeAndRefreshDoNotCollide(t *testing.T) {
	km := DefaultKeyMap()
	seen := map[string]string{}
	for name, b := range map[string]key.Binding{
		"like": km.Like, "repost": km.Repost, "refresh": km.Refresh,
		"bookmark": km.Bookmark, "follow": km.Follow, "comment": km.Comment,
		"editor": km.CommentEditor, "more": km.LoadMore, "quit": km.Quit,
	} {
		for _, k := range b.Keys() {
			if other, ok := seen[k]; ok {
				t.Fatalf("key %q bound to both %s and %s", k, other, name)
			}
			seen[k] = name
		}
	}
}
