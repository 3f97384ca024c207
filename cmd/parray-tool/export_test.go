// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Fantom-foundation/parray/archive"
	"github.com/Fantom-foundation/parray/archive/ldb"
	"github.com/Fantom-foundation/parray/archive/memory"
	"github.com/Fantom-foundation/parray/common/interrupt"
	"go.uber.org/mock/gomock"
)

func TestExportHistory_ArchivesSelectedVersions(t *testing.T) {
	target := memory.NewArchive[uint64](archive.RlpCodec[uint64]{})
	config := exportConfig{length: 8, versions: 25, interval: 10, seed: 1}
	if err := exportHistory(context.Background(), newLogTo(&bytes.Buffer{}, "export"), target, config); err != nil {
		t.Fatalf("failed to export history: %v", err)
	}
	for _, version := range []uint64{0, 10, 20} {
		array, err := target.Get(version)
		if err != nil {
			t.Errorf("version %d should be archived: %v", version, err)
			continue
		}
		if got, want := array.Len(), 8; got != want {
			t.Errorf("unexpected length, wanted %d, got %d", want, got)
		}
	}
	if _, err := target.Get(5); !errors.Is(err, archive.ErrVersionNotFound) {
		t.Errorf("version 5 should not be archived, got %v", err)
	}
	if err := target.Verify(); err != nil {
		t.Errorf("archive should be valid: %v", err)
	}
}

func TestExportHistory_ContinuesAfterLastArchivedVersion(t *testing.T) {
	target := memory.NewArchive[uint64](archive.RlpCodec[uint64]{})
	config := exportConfig{length: 4, versions: 3, interval: 1, seed: 1}
	log := newLogTo(&bytes.Buffer{}, "export")
	for i := 0; i < 2; i++ {
		if err := exportHistory(context.Background(), log, target, config); err != nil {
			t.Fatalf("failed to export history: %v", err)
		}
	}
	if last, found, err := target.GetLastVersion(); err != nil || !found || last != 5 {
		t.Errorf("unexpected last version, wanted 5, got %d, %t, %v", last, found, err)
	}
}

func TestExportHistory_SameSeedProducesSameHashes(t *testing.T) {
	config := exportConfig{length: 16, versions: 50, interval: 7, seed: 42}
	hashes := map[string]bool{}
	for i := 0; i < 2; i++ {
		target := memory.NewArchive[uint64](archive.RlpCodec[uint64]{})
		if err := exportHistory(context.Background(), newLogTo(&bytes.Buffer{}, "export"), target, config); err != nil {
			t.Fatalf("failed to export history: %v", err)
		}
		hash, err := target.GetHash(49)
		if err != nil {
			t.Fatalf("failed to get hash: %v", err)
		}
		hashes[hash.String()] = true
	}
	if len(hashes) != 1 {
		t.Errorf("exports should produce the same hashes, got %v", hashes)
	}
}

func TestExportHistory_ArchiveErrorsAreForwarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := archive.NewMockArchive[uint64](ctrl)
	injected := errors.New("injected error")
	target.EXPECT().GetLastVersion().Return(uint64(0), false, nil)
	target.EXPECT().Add(uint64(0), gomock.Any()).Return(injected)

	config := exportConfig{length: 4, versions: 10, interval: 1, seed: 1}
	if err := exportHistory(context.Background(), newLogTo(&bytes.Buffer{}, "export"), target, config); !errors.Is(err, injected) {
		t.Errorf("expected injected error, got %v", err)
	}
}

func TestExportHistory_CanceledExportStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	target := archive.NewMockArchive[uint64](ctrl)
	target.EXPECT().GetLastVersion().Return(uint64(0), false, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	config := exportConfig{length: 4, versions: 10, interval: 1, seed: 1}
	if err := exportHistory(ctx, newLogTo(&bytes.Buffer{}, "export"), target, config); !errors.Is(err, interrupt.ErrCanceled) {
		t.Errorf("expected cancellation error, got %v", err)
	}
}

func TestExportHistory_InvalidConfigurationIsRejected(t *testing.T) {
	configs := []exportConfig{
		{length: 0, versions: 1, interval: 1},
		{length: 1, versions: 1, interval: 0},
	}
	for _, config := range configs {
		if err := exportHistory(context.Background(), newLogTo(&bytes.Buffer{}, "export"), memory.NewArchive[uint64](archive.RlpCodec[uint64]{}), config); err == nil {
			t.Errorf("configuration %+v should be rejected", config)
		}
	}
}

func TestExportedArchive_CanBeVerifiedAndInspected(t *testing.T) {
	dir := t.TempDir()
	target, err := ldb.OpenArchive[uint64](dir, archive.RlpCodec[uint64]{}, ldb.Options{})
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	config := exportConfig{length: 10, versions: 30, interval: 3, seed: 7}
	if err := exportHistory(context.Background(), newLogTo(&bytes.Buffer{}, "export"), target, config); err != nil {
		t.Fatalf("failed to export history: %v", err)
	}
	if err := target.Close(); err != nil {
		t.Fatalf("failed to close archive: %v", err)
	}

	var logs bytes.Buffer
	if err := verifyArchive(newLogTo(&logs, "verify"), dir); err != nil {
		t.Errorf("verification failed: %v", err)
	}
	if !strings.Contains(logs.String(), "Verification successful!") {
		t.Errorf("missing success message in log:\n%s", logs.String())
	}

	var out bytes.Buffer
	if err := printArchiveInfo(&out, dir); err != nil {
		t.Fatalf("failed to print info: %v", err)
	}
	for _, want := range []string{"Last version:      27", "Array length:      10", "Last hash:         0x"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("missing %q in info:\n%s", want, out.String())
		}
	}
}

func TestPrintArchiveInfo_EmptyArchive(t *testing.T) {
	dir := t.TempDir()
	target, err := ldb.OpenArchive[uint64](dir, archive.RlpCodec[uint64]{}, ldb.Options{})
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	if err := target.Close(); err != nil {
		t.Fatalf("failed to close archive: %v", err)
	}
	var out bytes.Buffer
	if err := printArchiveInfo(&out, dir); err != nil {
		t.Fatalf("failed to print info: %v", err)
	}
	if !strings.Contains(out.String(), "Last version:      none") {
		t.Errorf("unexpected info:\n%s", out.String())
	}
}

func TestVerifyArchive_MissingDirectoryIsReported(t *testing.T) {
	if err := verifyArchive(newLogTo(&bytes.Buffer{}, "verify"), t.TempDir()+"/missing"); err == nil {
		t.Errorf("verifying a missing archive should fail")
	}
}
