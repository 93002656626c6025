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

package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/unikorn-cloud/apim/pkg/openapi"
)

var (
	// ErrNotFound is raised when a resource does not exist in the tenant.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is raised when a request clashes with existing state.
	ErrConflict = errors.New("resource conflict")

	// ErrInvalid is raised when a request is not valid for the current state.
	ErrInvalid = errors.New("invalid request")
)

// MaxRevisions is the number of revisions an API may hold at once.
const MaxRevisions = 5

type apiRecord struct {
	api       openapi.API
	revisions []*openapi.APIRevision
	endpoints map[string]*openapi.APIEndpoint
	// lastRevision is the highest revision number ever issued.
	lastRevision int
}

type applicationRecord struct {
	application   openapi.Application
	keys          map[string]*openapi.ApplicationKey
	subscriptions map[string]*openapi.Subscription
}

type tenant struct {
	apis         map[string]*apiRecord
	applications map[string]*applicationRecord
}

// Store is an in-memory, tenant partitioned, record of everything the
// control plane manages.  Resources in one tenant are invisible to all others.
type Store struct {
	lock    sync.Mutex
	tenants map[string]*tenant
}

// New returns an empty store.
func New() *Store {
	return &Store{
		tenants: map[string]*tenant{},
	}
}

// tenant returns the tenant's partition, creating it on first use.
// Must be called with the lock held.
func (s *Store) tenant(domain string) *tenant {
	t, ok := s.tenants[domain]
	if !ok {
		t = &tenant{
			apis:         map[string]*apiRecord{},
			applications: map[string]*applicationRecord{},
		}

		s.tenants[domain] = t
	}

	return t
}

func (s *Store) api(domain, apiID string) (*apiRecord, error) {
	record, ok := s.tenant(domain).apis[apiID]
	if !ok {
		return nil, fmt.Errorf("%w: api %s", ErrNotFound, apiID)
	}

	return record, nil
}

func (s *Store) application(domain, applicationID string) (*applicationRecord, error) {
	record, ok := s.tenant(domain).applications[applicationID]
	if !ok {
		return nil, fmt.Errorf("%w: application %s", ErrNotFound, applicationID)
	}

	return record, nil
}

// CreateAPI records a new API in the CREATED state.
func (s *Store) CreateAPI(_ context.Context, domain string, in *openapi.API) (*openapi.API, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	t := s.tenant(domain)

	for _, record := range t.apis {
		if record.api.Version != in.Version {
			continue
		}

		if record.api.Name == in.Name {
			return nil, fmt.Errorf("%w: api %s:%s already exists", ErrConflict, in.Name, in.Version)
		}

		if record.api.Context == in.Context {
			return nil, fmt.Errorf("%w: context %s is already in use", ErrConflict, in.Context)
		}
	}

	api := *in
	api.Id = uuid.NewString()
	api.LifeCycleStatus = openapi.LifecycleStatusCreated

	t.apis[api.Id] = &apiRecord{
		api:       api,
		endpoints: map[string]*openapi.APIEndpoint{},
	}

	return &api, nil
}

// GetAPI returns an API.
func (s *Store) GetAPI(_ context.Context, domain, apiID string) (*openapi.API, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return nil, err
	}

	api := record.api

	return &api, nil
}

// DeleteAPI removes an API along with its revisions, endpoints and any
// subscriptions to it.  An API with deployed revisions cannot be deleted.
func (s *Store) DeleteAPI(_ context.Context, domain, apiID string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return err
	}

	for _, revision := range record.revisions {
		if len(revision.DeploymentInfo) != 0 {
			return fmt.Errorf("%w: api %s has deployed revision %s", ErrConflict, apiID, revision.Id)
		}
	}

	t := s.tenant(domain)

	for _, application := range t.applications {
		for id, subscription := range application.subscriptions {
			if subscription.ApiId == apiID {
				delete(application.subscriptions, id)
			}
		}
	}

	delete(t.apis, apiID)

	return nil
}

// lifecycleTransitions maps an action to the states it is valid from and the
// state it results in.
//
//nolint:gochecknoglobals
var lifecycleTransitions = map[string]struct {
	from []string
	to   string
}{
	openapi.LifecycleActionPublish: {
		from: []string{openapi.LifecycleStatusCreated, openapi.LifecycleStatusBlocked},
		to:   openapi.LifecycleStatusPublished,
	},
	openapi.LifecycleActionDemoteToCreated: {
		from: []string{openapi.LifecycleStatusPublished},
		to:   openapi.LifecycleStatusCreated,
	},
	openapi.LifecycleActionBlock: {
		from: []string{openapi.LifecycleStatusPublished},
		to:   openapi.LifecycleStatusBlocked,
	},
	openapi.LifecycleActionDeprecate: {
		from: []string{openapi.LifecycleStatusPublished},
		to:   openapi.LifecycleStatusDeprecated,
	},
	openapi.LifecycleActionRetire: {
		from: []string{openapi.LifecycleStatusDeprecated},
		to:   openapi.LifecycleStatusRetired,
	},
}

// ChangeLifecycle applies a lifecycle action and returns the new state.
// Publishing requires at least one deployed revision.
func (s *Store) ChangeLifecycle(_ context.Context, domain, apiID, action string) (string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return "", err
	}

	transition, ok := lifecycleTransitions[action]
	if !ok {
		return "", fmt.Errorf("%w: unknown lifecycle action %q", ErrInvalid, action)
	}

	if !slices.Contains(transition.from, record.api.LifeCycleStatus) {
		return "", fmt.Errorf("%w: cannot %s an api in state %s", ErrInvalid, action, record.api.LifeCycleStatus)
	}

	if transition.to == openapi.LifecycleStatusPublished && !record.deployed() {
		return "", fmt.Errorf("%w: api %s has no deployed revision", ErrInvalid, apiID)
	}

	record.api.LifeCycleStatus = transition.to

	return transition.to, nil
}

func (r *apiRecord) deployed() bool {
	for _, revision := range r.revisions {
		if len(revision.DeploymentInfo) != 0 {
			return true
		}
	}

	return false
}

func (r *apiRecord) revision(revisionID string) (*openapi.APIRevision, error) {
	for _, revision := range r.revisions {
		if revision.Id == revisionID {
			return revision, nil
		}
	}

	return nil, fmt.Errorf("%w: revision %s", ErrNotFound, revisionID)
}

func copyRevision(in *openapi.APIRevision) openapi.APIRevision {
	out := *in
	out.DeploymentInfo = slices.Clone(in.DeploymentInfo)

	return out
}

// CreateRevision snapshots an API.
func (s *Store) CreateRevision(_ context.Context, domain, apiID string, description *string) (*openapi.APIRevision, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return nil, err
	}

	if len(record.revisions) >= MaxRevisions {
		return nil, fmt.Errorf("%w: api %s already has %d revisions", ErrConflict, apiID, MaxRevisions)
	}

	// Revision numbers are never reused, even when the newest is deleted.
	record.lastRevision++

	revision := &openapi.APIRevision{
		Id:          uuid.NewString(),
		DisplayName: fmt.Sprintf("Revision %d", record.lastRevision),
		Description: description,
		CreatedTime: time.Now().UnixMilli(),
	}

	record.revisions = append(record.revisions, revision)

	out := copyRevision(revision)

	return &out, nil
}

// ListRevisions returns the revisions of an API, oldest first.
func (s *Store) ListRevisions(_ context.Context, domain, apiID string) ([]openapi.APIRevision, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return nil, err
	}

	out := make([]openapi.APIRevision, len(record.revisions))

	for i, revision := range record.revisions {
		out[i] = copyRevision(revision)
	}

	return out, nil
}

// DeployRevision deploys a revision to the named gateway environments.  Any
// other revision deployed to the same environment is replaced.
func (s *Store) DeployRevision(_ context.Context, domain, apiID, revisionID string, deployments []openapi.APIRevisionDeployment) ([]openapi.APIRevisionDeployment, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return nil, err
	}

	target, err := record.revision(revisionID)
	if err != nil {
		return nil, err
	}

	if len(deployments) == 0 {
		return nil, fmt.Errorf("%w: no deployment environments given", ErrInvalid)
	}

	for _, deployment := range deployments {
		for _, revision := range record.revisions {
			revision.DeploymentInfo = slices.DeleteFunc(revision.DeploymentInfo, func(d openapi.APIRevisionDeployment) bool {
				return d.Name == deployment.Name
			})
		}

		deployment.RevisionUuid = revisionID
		deployment.Status = openapi.WorkflowStatusApproved

		target.DeploymentInfo = append(target.DeploymentInfo, deployment)
	}

	return slices.Clone(target.DeploymentInfo), nil
}

// UndeployRevision removes a revision from the named gateway environments.
func (s *Store) UndeployRevision(_ context.Context, domain, apiID, revisionID string, deployments []openapi.APIRevisionDeployment) ([]openapi.APIRevisionDeployment, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return nil, err
	}

	target, err := record.revision(revisionID)
	if err != nil {
		return nil, err
	}

	for _, deployment := range deployments {
		target.DeploymentInfo = slices.DeleteFunc(target.DeploymentInfo, func(d openapi.APIRevisionDeployment) bool {
			return d.Name == deployment.Name
		})
	}

	return deployments, nil
}

// DeleteRevision removes an undeployed revision and returns those remaining.
func (s *Store) DeleteRevision(_ context.Context, domain, apiID, revisionID string) ([]openapi.APIRevision, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return nil, err
	}

	target, err := record.revision(revisionID)
	if err != nil {
		return nil, err
	}

	if len(target.DeploymentInfo) != 0 {
		return nil, fmt.Errorf("%w: revision %s is deployed", ErrInvalid, revisionID)
	}

	record.revisions = slices.DeleteFunc(record.revisions, func(r *openapi.APIRevision) bool {
		return r.Id == revisionID
	})

	out := make([]openapi.APIRevision, len(record.revisions))

	for i, revision := range record.revisions {
		out[i] = copyRevision(revision)
	}

	return out, nil
}

func (r *apiRecord) checkEndpointName(name, excludeID string) error {
	for id, endpoint := range r.endpoints {
		if id != excludeID && endpoint.Name == name {
			return fmt.Errorf("%w: endpoint %s already exists", ErrConflict, name)
		}
	}

	return nil
}

// ListEndpoints returns the endpoints of an API ordered by name.
func (s *Store) ListEndpoints(_ context.Context, domain, apiID string) ([]openapi.APIEndpoint, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return nil, err
	}

	out := make([]openapi.APIEndpoint, 0, len(record.endpoints))

	for _, endpoint := range record.endpoints {
		out = append(out, *endpoint)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out, nil
}

// GetEndpoint returns a single endpoint of an API.
func (s *Store) GetEndpoint(_ context.Context, domain, apiID, endpointID string) (*openapi.APIEndpoint, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return nil, err
	}

	endpoint, ok := record.endpoints[endpointID]
	if !ok {
		return nil, fmt.Errorf("%w: endpoint %s", ErrNotFound, endpointID)
	}

	out := *endpoint

	return &out, nil
}

// CreateEndpoint adds an endpoint to an API, names are unique per API.
func (s *Store) CreateEndpoint(_ context.Context, domain, apiID string, in *openapi.APIEndpoint) (*openapi.APIEndpoint, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return nil, err
	}

	if err := record.checkEndpointName(in.Name, ""); err != nil {
		return nil, err
	}

	endpoint := *in
	endpoint.Id = uuid.NewString()

	record.endpoints[endpoint.Id] = &endpoint

	out := endpoint

	return &out, nil
}

// UpdateEndpoint replaces an endpoint, preserving its identifier.
func (s *Store) UpdateEndpoint(_ context.Context, domain, apiID, endpointID string, in *openapi.APIEndpoint) (*openapi.APIEndpoint, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return nil, err
	}

	if _, ok := record.endpoints[endpointID]; !ok {
		return nil, fmt.Errorf("%w: endpoint %s", ErrNotFound, endpointID)
	}

	if err := record.checkEndpointName(in.Name, endpointID); err != nil {
		return nil, err
	}

	endpoint := *in
	endpoint.Id = endpointID

	record.endpoints[endpointID] = &endpoint

	out := endpoint

	return &out, nil
}

// DeleteEndpoint removes an endpoint from an API.
func (s *Store) DeleteEndpoint(_ context.Context, domain, apiID, endpointID string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.api(domain, apiID)
	if err != nil {
		return err
	}

	if _, ok := record.endpoints[endpointID]; !ok {
		return fmt.Errorf("%w: endpoint %s", ErrNotFound, endpointID)
	}

	delete(record.endpoints, endpointID)

	return nil
}

// CreateApplication records a new application, names are unique per tenant.
func (s *Store) CreateApplication(_ context.Context, domain string, in *openapi.Application) (*openapi.Application, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	t := s.tenant(domain)

	for _, record := range t.applications {
		if record.application.Name == in.Name {
			return nil, fmt.Errorf("%w: application %s already exists", ErrConflict, in.Name)
		}
	}

	application := *in
	application.ApplicationId = uuid.NewString()
	application.Status = openapi.WorkflowStatusApproved

	if application.TokenType == "" {
		application.TokenType = openapi.TokenTypeJWT
	}

	t.applications[application.ApplicationId] = &applicationRecord{
		application:   application,
		keys:          map[string]*openapi.ApplicationKey{},
		subscriptions: map[string]*openapi.Subscription{},
	}

	return &application, nil
}

// GetApplication returns an application.
func (s *Store) GetApplication(_ context.Context, domain, applicationID string) (*openapi.Application, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.application(domain, applicationID)
	if err != nil {
		return nil, err
	}

	application := record.application

	return &application, nil
}

// DeleteApplication removes an application, its keys and subscriptions, and
// returns the consumer keys that were issued to it so they can be revoked.
func (s *Store) DeleteApplication(_ context.Context, domain, applicationID string) ([]string, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.application(domain, applicationID)
	if err != nil {
		return nil, err
	}

	consumerKeys := make([]string, 0, len(record.keys))

	for _, key := range record.keys {
		consumerKeys = append(consumerKeys, key.ConsumerKey)
	}

	delete(s.tenant(domain).applications, applicationID)

	return consumerKeys, nil
}

// AddApplicationKey records the keys generated for an application, only one
// set of keys may exist per key type.
func (s *Store) AddApplicationKey(_ context.Context, domain, applicationID string, key *openapi.ApplicationKey) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.application(domain, applicationID)
	if err != nil {
		return err
	}

	if _, ok := record.keys[key.KeyType]; ok {
		return fmt.Errorf("%w: %s keys already generated for application %s", ErrConflict, key.KeyType, applicationID)
	}

	stored := *key
	stored.Token = nil

	record.keys[key.KeyType] = &stored

	return nil
}

// Subscribe subscribes an application to a published API.
func (s *Store) Subscribe(_ context.Context, domain string, in *openapi.Subscription) (*openapi.Subscription, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	application, err := s.application(domain, in.ApplicationId)
	if err != nil {
		return nil, err
	}

	api, err := s.api(domain, in.ApiId)
	if err != nil {
		return nil, err
	}

	if api.api.LifeCycleStatus != openapi.LifecycleStatusPublished {
		return nil, fmt.Errorf("%w: api %s is not published", ErrInvalid, in.ApiId)
	}

	for _, subscription := range application.subscriptions {
		if subscription.ApiId == in.ApiId {
			return nil, fmt.Errorf("%w: application %s is already subscribed to api %s", ErrConflict, in.ApplicationId, in.ApiId)
		}
	}

	subscription := *in
	subscription.SubscriptionId = uuid.NewString()
	subscription.Status = openapi.SubscriptionStatusUnblocked

	application.subscriptions[subscription.SubscriptionId] = &subscription

	out := subscription

	return &out, nil
}

// Subscriptions returns the subscriptions of an application.
func (s *Store) Subscriptions(_ context.Context, domain, applicationID string) ([]openapi.Subscription, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	record, err := s.application(domain, applicationID)
	if err != nil {
		return nil, err
	}

	out := make([]openapi.Subscription, 0, len(record.subscriptions))

	for _, subscription := range record.subscriptions {
		out = append(out, *subscription)
	}

	return out, nil
}
