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
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
	"github.com/google/uuid"
	"github.com/spjmurray/go-util/pkg/set"
)

var (
	// ErrInvalidClient is raised when client credentials are unknown or wrong.
	ErrInvalidClient = errors.New("invalid client")

	// ErrInvalidGrant is raised when a grant cannot be honoured.
	ErrInvalidGrant = errors.New("invalid grant")

	// ErrUnsupportedGrantType is raised for grant types the client may not use.
	ErrUnsupportedGrantType = errors.New("unsupported grant type")

	// ErrInvalidToken is raised when a bearer token is malformed, forged,
	// expired or belongs to a revoked client.
	ErrInvalidToken = errors.New("invalid token")
)

const (
	ScopeAPIView    = "apim:api_view"
	ScopeAPICreate  = "apim:api_create"
	ScopeAPIPublish = "apim:api_publish"
	ScopeAPIDelete  = "apim:api_delete"
	ScopeSubscribe  = "apim:subscribe"
	ScopeAppManage  = "apim:app_manage"
	ScopeSubManage  = "apim:sub_manage"

	// ScopeDefault is granted when nothing grantable was requested.
	ScopeDefault = "default"

	// DefaultTokenLifetime applies when a client asks for no explicit validity.
	DefaultTokenLifetime = time.Hour

	// MaxTokenLifetime bounds any requested validity.
	MaxTokenLifetime = 365 * 24 * time.Hour

	// TokenIssuer is the iss claim of every access token.
	TokenIssuer = "apim-control-plane"
)

// Lifetime converts a requested validity in seconds into a token lifetime.
// Zero means the default applies, periods above MaxTokenLifetime are clamped.
func Lifetime(seconds int64) time.Duration {
	if seconds <= 0 {
		return 0
	}

	if seconds > int64(MaxTokenLifetime/time.Second) {
		return MaxTokenLifetime
	}

	return time.Duration(seconds) * time.Second
}

// managementScopes are those a user token may be granted.
func managementScopes() set.Set[string] {
	return set.New[string](
		ScopeAPIView,
		ScopeAPICreate,
		ScopeAPIPublish,
		ScopeAPIDelete,
		ScopeSubscribe,
		ScopeAppManage,
		ScopeSubManage,
	)
}

// Kind distinguishes who a token was issued to.
type Kind string

const (
	// KindUser tokens act on behalf of a tenant user.
	KindUser Kind = "user"
	// KindApplication tokens act on behalf of a subscribed application.
	KindApplication Kind = "application"
)

// Info describes an issued access token.
type Info struct {
	// Tenant is the tenant domain the token is bound to.
	Tenant string
	// Subject is the user name or application ID.
	Subject string
	// ClientID is the OAuth client that requested the token.
	ClientID string
	// Kind is who the token was issued to.
	Kind Kind
	// Scopes are the granted scopes.
	Scopes []string
	// Expiry is when the token stops being valid.
	Expiry time.Time
}

// HasScope returns whether the scope was granted.
func (i *Info) HasScope(scope string) bool {
	return slices.Contains(i.Scopes, scope)
}

// Token is an issued access token.
type Token struct {
	AccessToken string
	Scopes      []string
	ExpiresIn   time.Duration
}

// privateClaims are carried alongside the registered JWT claims.
type privateClaims struct {
	Tenant   string `json:"tenant"`
	ClientID string `json:"client_id"`
	Kind     Kind   `json:"kind"`
	Scope    string `json:"scope"`
}

type client struct {
	id         string
	secret     string
	name       string
	tenant     string
	owner      string
	grantTypes []string
	// application is set for clients created by key generation.
	application string
}

// Issuer owns OAuth clients and signs the JWT access tokens issued to them.
// Tokens are self contained, revoking a client invalidates every token it
// was issued.
type Issuer struct {
	lock    sync.Mutex
	clients map[string]*client
	key     ed25519.PrivateKey
	signer  jose.Signer
	now     func() time.Time
}

// NewIssuer returns an issuer with no clients and a fresh signing key.
func NewIssuer() (*Issuer, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating token signing key: %w", err)
	}

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.EdDSA, Key: key}, (&jose.SignerOptions{}).WithType("JWT"))
	if err != nil {
		return nil, fmt.Errorf("creating token signer: %w", err)
	}

	issuer := &Issuer{
		clients: map[string]*client{},
		key:     key,
		signer:  signer,
		now:     time.Now,
	}

	return issuer, nil
}

func randomString(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)

	return hex.EncodeToString(b)
}

// Client describes a registered OAuth client.
type Client struct {
	ID     string
	Secret string
	Name   string
}

// RegisterClient creates an OAuth client owned by a user, the client inherits
// the user's tenant.
func (i *Issuer) RegisterClient(owner *User, name string, grantTypes []string) *Client {
	i.lock.Lock()
	defer i.lock.Unlock()

	c := &client{
		id:         randomString(16),
		secret:     randomString(16),
		name:       name,
		tenant:     owner.Tenant,
		owner:      owner.Username,
		grantTypes: grantTypes,
	}

	i.clients[c.id] = c

	return &Client{
		ID:     c.id,
		Secret: c.secret,
		Name:   c.name,
	}
}

// RegisterApplicationClient creates the OAuth client backing an application's keys.
func (i *Issuer) RegisterApplicationClient(tenant, applicationID string, grantTypes []string) *Client {
	i.lock.Lock()
	defer i.lock.Unlock()

	c := &client{
		id:          randomString(16),
		secret:      randomString(16),
		name:        applicationID,
		tenant:      tenant,
		grantTypes:  grantTypes,
		application: applicationID,
	}

	i.clients[c.id] = c

	return &Client{
		ID:     c.id,
		Secret: c.secret,
		Name:   c.name,
	}
}

// RevokeClient deletes a client, tokens it was issued stop validating.
func (i *Issuer) RevokeClient(clientID string) {
	i.lock.Lock()
	defer i.lock.Unlock()

	delete(i.clients, clientID)
}

func (i *Issuer) authenticateClient(clientID, clientSecret string) (*client, error) {
	c, ok := i.clients[clientID]
	if !ok || c.secret != clientSecret {
		return nil, fmt.Errorf("%w: client authentication failed", ErrInvalidClient)
	}

	return c, nil
}

func checkGrantType(c *client, grantType string) error {
	// Clients registered with no explicit grant types may use any.
	if len(c.grantTypes) == 0 || slices.Contains(c.grantTypes, grantType) {
		return nil
	}

	return fmt.Errorf("%w: client %s is not permitted to use %s", ErrUnsupportedGrantType, c.id, grantType)
}

// grant narrows the requested scopes to those grantable.
func grant(requested string, grantable set.Set[string]) []string {
	var scopes []string

	for scope := range set.New[string](strings.Fields(requested)...).Intersection(grantable).All() {
		scopes = append(scopes, scope)
	}

	if len(scopes) == 0 {
		return []string{ScopeDefault}
	}

	slices.Sort(scopes)

	return scopes
}

func (i *Issuer) issue(info *Info, lifetime time.Duration) (*Token, error) {
	if lifetime <= 0 {
		lifetime = DefaultTokenLifetime
	}

	now := i.now()

	claims := jwt.Claims{
		ID:       uuid.NewString(),
		Issuer:   TokenIssuer,
		Subject:  info.Subject,
		IssuedAt: jwt.NewNumericDate(now),
		Expiry:   jwt.NewNumericDate(now.Add(lifetime)),
	}

	private := privateClaims{
		Tenant:   info.Tenant,
		ClientID: info.ClientID,
		Kind:     info.Kind,
		Scope:    strings.Join(info.Scopes, " "),
	}

	token, err := jwt.Signed(i.signer).Claims(claims).Claims(private).Serialize()
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	result := &Token{
		AccessToken: token,
		Scopes:      info.Scopes,
		ExpiresIn:   lifetime,
	}

	return result, nil
}

// PasswordGrant issues a user token.  The user must belong to the same tenant
// as the client.
func (i *Issuer) PasswordGrant(users Users, clientID, clientSecret, username, password, scope string) (*Token, error) {
	i.lock.Lock()
	defer i.lock.Unlock()

	c, err := i.authenticateClient(clientID, clientSecret)
	if err != nil {
		return nil, err
	}

	if err := checkGrantType(c, "password"); err != nil {
		return nil, err
	}

	user, err := users.Authenticate(username, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrant, err)
	}

	if user.Tenant != c.tenant {
		return nil, fmt.Errorf("%w: user %s is not in the client's tenant", ErrInvalidGrant, username)
	}

	info := &Info{
		Tenant:   user.Tenant,
		Subject:  user.Username,
		ClientID: c.id,
		Kind:     KindUser,
		Scopes:   grant(scope, managementScopes()),
	}

	return i.issue(info, DefaultTokenLifetime)
}

// ClientCredentialsGrant issues an application token.
func (i *Issuer) ClientCredentialsGrant(clientID, clientSecret, scope string, lifetime time.Duration) (*Token, error) {
	i.lock.Lock()
	defer i.lock.Unlock()

	c, err := i.authenticateClient(clientID, clientSecret)
	if err != nil {
		return nil, err
	}

	if err := checkGrantType(c, "client_credentials"); err != nil {
		return nil, err
	}

	subject := c.application
	if subject == "" {
		subject = c.owner
	}

	info := &Info{
		Tenant:   c.tenant,
		Subject:  subject,
		ClientID: c.id,
		Kind:     KindApplication,
		Scopes:   grant(scope, set.New[string]()),
	}

	return i.issue(info, lifetime)
}

// Validate verifies a token's signature and expiry, and that the client it
// was issued to still exists.
func (i *Issuer) Validate(token string) (*Info, error) {
	parsed, err := jwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.EdDSA})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	var claims jwt.Claims

	var private privateClaims

	if err := parsed.Claims(i.key.Public(), &claims, &private); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	i.lock.Lock()
	defer i.lock.Unlock()

	if err := claims.ValidateWithLeeway(jwt.Expected{Issuer: TokenIssuer, Time: i.now()}, 0); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if _, ok := i.clients[private.ClientID]; !ok {
		return nil, fmt.Errorf("%w: client %s has been revoked", ErrInvalidToken, private.ClientID)
	}

	info := &Info{
		Tenant:   private.Tenant,
		Subject:  claims.Subject,
		ClientID: private.ClientID,
		Kind:     private.Kind,
		Scopes:   strings.Fields(private.Scope),
		Expiry:   claims.Expiry.Time(),
	}

	return info, nil
}
