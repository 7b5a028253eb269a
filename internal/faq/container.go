package faq

import (
	"strconv"
	"strings"
)

// Drop-target tokens used by the editor UI.
const (
	DraftsToken        = "drafts"
	UncategorizedToken = "published"
)

type ContainerKind int

const (
	KindCategory ContainerKind = iota + 1
	KindUncategorized
	KindDrafts
)

// Container identifies the list a question lives in: a category, the
// published-but-uncategorized pool or the draft pool. The zero value is not a
// valid container.
type Container struct {
	kind       ContainerKind
	categoryID int
}

var (
	Drafts        = Container{kind: KindDrafts}
	Uncategorized = Container{kind: KindUncategorized}
)

func CategoryContainer(id int) Container {
	return Container{kind: KindCategory, categoryID: id}
}

func (c Container) Kind() ContainerKind { return c.kind }

func (c Container) IsZero() bool { return c.kind == 0 }

// CategoryID returns the category id for category containers.
func (c Container) CategoryID() (int, bool) {
	if c.kind != KindCategory {
		return 0, false
	}
	return c.categoryID, true
}

// Published reports whether questions in the container are published.
func (c Container) Published() bool {
	return c.kind == KindCategory || c.kind == KindUncategorized
}

func (c Container) String() string {
	switch c.kind {
	case KindCategory:
		return strconv.Itoa(c.categoryID)
	case KindUncategorized:
		return UncategorizedToken
	case KindDrafts:
		return DraftsToken
	}
	return ""
}

// ParseContainer converts drop-target metadata into a Container. It accepts the
// drafts token, the uncategorized token (also spelled "uncategorized") or a
// positive decimal category id.
func ParseContainer(s string) (Container, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return Container{}, false
	case DraftsToken:
		return Drafts, true
	case UncategorizedToken, "uncategorized":
		return Uncategorized, true
	}

	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return Container{}, false
	}
	return CategoryContainer(id), true
}

// ContainerOf returns the container a question claims by its own fields.
func ContainerOf(q Question) Container {
	if !q.IsPublished {
		return Drafts
	}
	if q.CategoryID != nil {
		return CategoryContainer(*q.CategoryID)
	}
	return Uncategorized
}
