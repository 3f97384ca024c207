// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestConstError_MessageIsConstantText(t *testing.T) {
	var err error = ConstError("version not found")
	if got, want := err.Error(), "version not found"; got != want {
		t.Errorf("unexpected message, wanted %q, got %q", want, got)
	}
}

func TestConstError_WrappedErrorsCanBeIdentified(t *testing.T) {
	const target = ConstError("target")
	tests := map[string]struct {
		err   error
		found bool
	}{
		"nil":              {nil, false},
		"plain":            {target, true},
		"unrelated":        {errors.New("target"), false},
		"same text":        {ConstError("target"), true},
		"other constant":   {ConstError("other"), false},
		"wrapped":          {fmt.Errorf("%w: got 5", target), true},
		"wrapped twice":    {fmt.Errorf("context: %w", fmt.Errorf("%w: got 5", target)), true},
		"joined":           {errors.Join(errors.New("unrelated"), target), true},
		"joined unrelated": {errors.Join(errors.New("unrelated")), false},
	}
	for name, test := range tests {
		if got := errors.Is(test.err, target); got != test.found {
			t.Errorf("%s: unexpected result for %v, wanted %t, got %t", name, test.err, test.found, got)
		}
	}
}
