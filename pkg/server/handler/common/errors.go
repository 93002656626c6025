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

package common

import (
	"errors"

	"github.com/unikorn-cloud/apim/pkg/server/store"
	servererrors "github.com/unikorn-cloud/core/pkg/server/errors"
)

// ConvertError maps storage errors onto HTTP errors.
func ConvertError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return servererrors.HTTPNotFound().WithError(err)
	case errors.Is(err, store.ErrConflict):
		return servererrors.HTTPConflict().WithError(err)
	case errors.Is(err, store.ErrInvalid):
		return servererrors.OAuth2InvalidRequest(err.Error()).WithError(err)
	}

	return servererrors.OAuth2ServerError("unable to access storage").WithError(err)
}
