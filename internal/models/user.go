// ABOUTME: User record models managed through the users REST resource
// ABOUTME: UserPatch carries partial updates where nil means "not present"

package models

// Geo holds coordinates as the service sends them (strings)
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Address is a user's postal address
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Company is a user's employer
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// UserRecord is one administrable user. ID is server-assigned.
type UserRecord struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// UserPatch is a partial UserRecord. Only non-nil fields are sent and merged.
type UserPatch struct {
	Name     *string  `json:"name,omitempty"`
	Username *string  `json:"username,omitempty"`
	Email    *string  `json:"email,omitempty"`
	Phone    *string  `json:"phone,omitempty"`
	Website  *string  `json:"website,omitempty"`
	Address  *Address `json:"address,omitempty"`
	Company  *Company `json:"company,omitempty"`
}

// Apply shallow-merges the present fields of p into u and returns the result
func (p UserPatch) Apply(u UserRecord) UserRecord {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Website != nil {
		u.Website = *p.Website
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Company != nil {
		u.Company = *p.Company
	}
	return u
}

// IsEmpty reports whether the patch carries no fields
func (p UserPatch) IsEmpty() bool {
	return p == UserPatch{}
}

// PatchFrom builds a patch carrying every field of u
func PatchFrom(u UserRecord) UserPatch {
	addr := u.Address
	company := u.Company
	return UserPatch{
		Name:     &u.Name,
		Username: &u.Username,
		Email:    &u.Email,
		Phone:    &u.Phone,
		Website:  &u.Website,
		Address:  &addr,
		Company:  &company,
	}
}

// String returns a pointer to s, for building patches
func String(s string) *string {
	return &s
}
