/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unikorn-cloud/apim/pkg/constants"
)

var (
	// ErrInvalidUser is raised when a user definition cannot be parsed.
	ErrInvalidUser = errors.New("invalid user definition")

	// ErrBadCredentials is raised when a user cannot be authenticated.
	ErrBadCredentials = errors.New("bad credentials")
)

// User is a tenant administrator.
type User struct {
	// Tenant is the tenant domain the user belongs to.
	Tenant string
	// Username is the fully qualified user name e.g. admin@wso2.com.
	Username string
	// Password is the user's password.
	Password string
}

// TenantOf returns the tenant domain a user name belongs to.
func TenantOf(username string) string {
	if i := strings.LastIndex(username, "@"); i >= 0 && i < len(username)-1 {
		return username[i+1:]
	}

	return constants.SuperTenantDomain
}

// ParseUser parses a domain:username:password tuple.  Usernames in a
// secondary tenant are qualified with the domain when they are not already.
func ParseUser(s string) (*User, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected domain:username:password, got %q", ErrInvalidUser, s)
	}

	domain, username, password := parts[0], parts[1], parts[2]

	if domain == "" || username == "" || password == "" {
		return nil, fmt.Errorf("%w: empty field in %q", ErrInvalidUser, s)
	}

	if domain != constants.SuperTenantDomain && !strings.HasSuffix(username, "@"+domain) {
		username += "@" + domain
	}

	if TenantOf(username) != domain {
		return nil, fmt.Errorf("%w: user %s does not belong to tenant %s", ErrInvalidUser, username, domain)
	}

	user := &User{
		Tenant:   domain,
		Username: username,
		Password: password,
	}

	return user, nil
}

// Users is the set of users known to the control plane keyed by user name.
type Users map[string]*User

// DefaultUsers are the administrators of the super tenant and one secondary tenant.
func DefaultUsers() Users {
	return Users{
		"admin": {
			Tenant:   constants.SuperTenantDomain,
			Username: "admin",
			Password: "admin",
		},
		"admin@wso2.com": {
			Tenant:   "wso2.com",
			Username: "admin@wso2.com",
			Password: "admin",
		},
	}
}

// Add adds or replaces a user.
func (u Users) Add(user *User) {
	u[user.Username] = user
}

// Authenticate checks a user's password.
func (u Users) Authenticate(username, password string) (*User, error) {
	user, ok := u[username]
	if !ok || user.Password != password {
		return nil, fmt.Errorf("%w: user %s", ErrBadCredentials, username)
	}

	return user, nil
}
