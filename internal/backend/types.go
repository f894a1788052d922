package backend

import "time"

// Profile is the optional display data attached to a user.
type Profile struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// User is the profile returned by GET /me. The API owns its shape; fields the
// CLI does not know about are dropped.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	Profile   *Profile  `json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName prefers the profile name, then username, then email.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Profile != nil {
		if name := joinName(u.Profile.FirstName, u.Profile.LastName); name != "" {
			return name
		}
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

func joinName(first, last string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}

// ListItem is one entry of a list. Items are addressed by index.
type ListItem struct {
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Checked  bool      `json:"checked"`
	Details  string    `json:"details,omitempty"`
	AddedBy  string    `json:"added_by"`
	AddedAt  time.Time `json:"added_at"`
}

// List is a shopping/task list as returned by the API.
type List struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Items       []ListItem `json:"items"`
	SharedWith  []string   `json:"shared_with"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Remaining counts unchecked items.
func (l *List) Remaining() int {
	n := 0
	for _, it := range l.Items {
		if !it.Checked {
			n++
		}
	}
	return n
}

type SignInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignUpRequest struct {
	Email     string  `json:"email"      validate:"required,email"`
	Password  string  `json:"password"   validate:"required,min=6"`
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name"  validate:"required"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

type CreateListRequest struct {
	Name        string `json:"name"                  validate:"required"`
	Description string `json:"description,omitempty"`
}

// UpdateListRequest carries optional fields; nil means unchanged.
type UpdateListRequest struct {
	Name        *string `json:"name,omitempty"        validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
}

type AddListItemRequest struct {
	Name     string `json:"name"               validate:"required"`
	Quantity int    `json:"quantity,omitempty" validate:"gte=0"`
	Details  string `json:"details,omitempty"  validate:"max=512"`
}

type UpdateListItemRequest struct {
	Index    int     `json:"index"              validate:"gte=0"`
	Name     *string `json:"name,omitempty"     validate:"omitempty,min=1"`
	Quantity *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Details  *string `json:"details,omitempty"  validate:"omitempty,max=512"`
}

type updateListItemCheckedRequest struct {
	Index   int  `json:"index" validate:"gte=0"`
	Checked bool `json:"checked"`
}

type deleteListItemRequest struct {
	Index int `json:"index" validate:"gte=0"`
}
