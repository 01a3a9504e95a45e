package forms

import (
	"strings"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/common"
)

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"notblank"`
}

func (f *LoginForm) normalize() {
	f.Email = common.NormalizeEmail(f.Email)
}

type SignUpForm struct {
	Name     string `form:"name" validate:"required,max=80"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"notblank,min=6"`
}

func (f *SignUpForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = common.NormalizeEmail(f.Email)
}

// GiveForm is filled in before the giving page is opened. Nothing is sent
// anywhere; the page asks for the amount again.
type GiveForm struct {
	Amount string `form:"amount" validate:"required,amount"`
	Name   string `form:"name" validate:"omitempty,max=80"`
}

func (f *GiveForm) normalize() {
	f.Amount = strings.TrimSpace(f.Amount)
	f.Name = strings.TrimSpace(f.Name)
}

type ProfileForm struct {
	Name    string `form:"name" validate:"required,max=80"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone" validate:"omitempty,phone"`
	Address string `form:"address" validate:"omitempty,max=200"`
}

func (f *ProfileForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = common.NormalizeEmail(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Address = strings.TrimSpace(f.Address)
}

// ProfileFormFrom pre-fills the form with u's current values.
func ProfileFormFrom(u models.User) ProfileForm {
	return ProfileForm{Name: u.Name, Email: u.Email, Phone: u.Phone, Address: u.Address}
}

// Patch returns the fields that differ from u.
func (f ProfileForm) Patch(u models.User) models.ProfilePatch {
	var p models.ProfilePatch
	if f.Name != u.Name {
		p.Name = &f.Name
	}
	if f.Email != u.Email {
		p.Email = &f.Email
	}
	if f.Phone != u.Phone {
		p.Phone = &f.Phone
	}
	if f.Address != u.Address {
		p.Address = &f.Address
	}
	return p
}
