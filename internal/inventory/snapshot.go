package inventory

import "encoding/json"

// HostVars are the per-host connection variables published under
// _meta.hostvars. Hosts are reached through the SSH gateway, so the user
// encodes node and account while host and port point at the gateway.
type HostVars struct {
	AnsibleSSHHost string `json:"ansible_ssh_host"`
	AnsibleSSHPort int    `json:"ansible_ssh_port"`
	AnsibleSSHUser string `json:"ansible_ssh_user"`
}

// Meta is the _meta block of the inventory document.
type Meta struct {
	Hostvars map[string]HostVars `json:"hostvars"`
}

// Snapshot is the full grouped inventory. Groups and Meta.Hostvars are
// populated together: every address in any group has a hostvars entry
// and vice versa.
type Snapshot struct {
	Meta   Meta
	Groups map[string]*Group
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Meta:   Meta{Hostvars: make(map[string]HostVars)},
		Groups: make(map[string]*Group),
	}
}

// MarshalJSON flattens the groups beside the _meta key, the document
// shape Ansible expects from a dynamic inventory.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(s.Groups)+1)
	doc["_meta"] = s.Meta
	for key, group := range s.Groups {
		doc[key] = group
	}
	return json.Marshal(doc)
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Meta = Meta{Hostvars: make(map[string]HostVars)}
	s.Groups = make(map[string]*Group, len(raw))
	for key, val := range raw {
		if key == "_meta" {
			if err := json.Unmarshal(val, &s.Meta); err != nil {
				return err
			}
			if s.Meta.Hostvars == nil {
				s.Meta.Hostvars = make(map[string]HostVars)
			}
			continue
		}
		g := &Group{}
		if err := json.Unmarshal(val, g); err != nil {
			return err
		}
		s.Groups[key] = g
	}
	return nil
}
