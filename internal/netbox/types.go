package netbox

import (
	"encoding/json"
	"fmt"

	"github.com/vovashkil/netbox-api-scripts/internal/common"
	"github.com/vovashkil/netbox-api-scripts/internal/nbctl"
)

// Status is a site lifecycle status slug.
type Status string

const (
	StatusPlanned         Status = "planned"
	StatusActive          Status = "active"
	StatusStaged          Status = "staged"
	StatusDecommissioning Status = "decommissioning"
	StatusDecommissioned  Status = "decommissioned"
)

// Statuses lists every status value NetBox defines for sites, in lifecycle order.
var Statuses = []Status{
	StatusPlanned,
	StatusActive,
	StatusStaged,
	StatusDecommissioning,
	StatusDecommissioned,
}

// ParseStatus converts a status slug into a Status, rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	for _, known := range Statuses {
		if Status(s) == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: unknown site status %q", nbctl.ErrUnexpectedResponse, s)
}

// UnmarshalJSON accepts both forms NetBox uses for a status: the bare slug
// (write payloads, older API versions) and the {"value", "label"} object
// (read payloads). Unknown values fail decoding.
func (s *Status) UnmarshalJSON(data []byte) error {
	var slug string
	if err := json.Unmarshal(data, &slug); err != nil {
		var obj struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("status is neither a string nor an object: %w", err)
		}
		slug = obj.Value
	}

	parsed, err := ParseStatus(slug)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalJSON emits the bare slug, which is what NetBox accepts on writes.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// TagList holds the tag names attached to a site. Order and duplicates are
// insignificant; comparisons are set comparisons.
type TagList []string

// UnmarshalJSON accepts both forms NetBox uses for tags: a list of tag
// objects ({"id", "name", "slug", ...}) on reads and a bare list of names.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		*t = names
		return nil
	}

	var objs []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &objs); err != nil {
		return fmt.Errorf("tags are neither a string list nor an object list: %w", err)
	}

	names = make([]string, 0, len(objs))
	for _, o := range objs {
		names = append(names, o.Name)
	}
	*t = names
	return nil
}

// MarshalJSON emits inline {"name", "slug"} objects. NetBox creates any tag
// it does not already know when the objects ride a site write, which keeps
// create a single mutation.
func (t TagList) MarshalJSON() ([]byte, error) {
	objs := make([]tagRef, 0, len(t))
	for _, name := range t {
		objs = append(objs, tagRef{Name: name, Slug: Slugify(name)})
	}
	return json.Marshal(objs)
}

// tagRef is the inline tag form accepted by site write payloads.
type tagRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Equal reports whether both lists name the same set of tags.
func (t TagList) Equal(other TagList) bool {
	a := common.NewSet(t...)
	b := common.NewSet(other...)
	return a.Equal(b)
}
