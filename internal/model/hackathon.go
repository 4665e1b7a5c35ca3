package model

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"time"
)

type ParticipantRole string

const (
	ParticipantRoleLeader ParticipantRole = "LEADER"
	ParticipantRoleMember ParticipantRole = "MEMBER"
)

const (
	MinTeamSize = 2
	MaxTeamSize = 6
)

// ParticipantInput is a single person in a registration payload.
type ParticipantInput struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,max=15"`
	Branch   string `json:"branch" validate:"required,max=50"`
	Section  string `json:"section" validate:"required,max=10"`
	Year     string `json:"year" validate:"required,max=10"`
}

type HackathonRegistration struct {
	TeamName          string              `json:"team_name" validate:"required,max=150"`
	TotalParticipants int                 `json:"total_participants" validate:"required,min=2,max=6"`
	Leader            *ParticipantInput   `json:"leader" validate:"required"`
	Members           []*ParticipantInput `json:"members" validate:"omitempty,max=5,dive,required"`
}

// UnmarshalJSON accepts total_participants as a number or a numeric string.
func (r *HackathonRegistration) UnmarshalJSON(b []byte) error {
	type plain HackathonRegistration
	aux := struct {
		*plain
		TotalParticipants json.RawMessage `json:"total_participants"`
	}{plain: (*plain)(r)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	n, err := parseInteger(aux.TotalParticipants)
	if err != nil {
		value := "string"
		if !strings.HasPrefix(strings.TrimSpace(string(aux.TotalParticipants)), `"`) {
			value = "number"
		}
		return &json.UnmarshalTypeError{Value: value, Type: reflect.TypeOf(r.TotalParticipants), Field: "total_participants"}
	}
	r.TotalParticipants = n
	return nil
}

// parseInteger reads a JSON integer, a numeric string, or a whole number
// written with a zero fraction ("2.0").
func parseInteger(raw json.RawMessage) (int, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	if i := strings.IndexByte(s, '.'); i >= 0 && strings.Trim(s[i+1:], "0") == "" {
		s = s[:i]
	}
	return strconv.Atoi(s)
}

type HackathonParticipant struct {
	ID        int64           `json:"id"`
	TeamID    int64           `json:"team"`
	Role      ParticipantRole `json:"role"`
	FullName  string          `json:"full_name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Branch    string          `json:"branch"`
	Section   string          `json:"section"`
	Year      string          `json:"year"`
	CreatedAt time.Time       `json:"created_at"`
}

type HackathonTeam struct {
	ID                int64                   `json:"id"`
	TeamName          string                  `json:"team_name"`
	TotalParticipants int                     `json:"total_participants"`
	CreatedAt         time.Time               `json:"created_at"`
	Participants      []*HackathonParticipant `json:"participants"`
}
