// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/test"
)

const testError = "test error: %s"

func TestMessage(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.Equate(t, e.Error(), "test error: foo")

	// wrapping an error of the same pattern next to itself causes one of
	// them to be dropped from the message
	f := curated.Errorf(testError, e)
	test.Equate(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectedSuccess(t, curated.Is(e, testError))
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedFailure(t, curated.Is(e, "some other error"))

	// uncurated errors are never matched
	g := errors.New("plain error")
	test.ExpectedFailure(t, curated.IsAny(g))
	test.ExpectedFailure(t, curated.Is(g, "plain error"))
	test.ExpectedFailure(t, curated.Is(nil, testError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf("wrapping error: %v", e)

	// Is() only matches the outermost pattern, Has() matches anywhere in
	// the chain
	test.ExpectedFailure(t, curated.Is(f, testError))
	test.ExpectedSuccess(t, curated.Is(f, "wrapping error: %v"))
	test.ExpectedSuccess(t, curated.Has(f, testError))
	test.ExpectedSuccess(t, curated.Has(f, "wrapping error: %v"))
	test.ExpectedFailure(t, curated.Has(f, "some other error"))
}
