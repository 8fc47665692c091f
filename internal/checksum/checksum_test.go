package checksum

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.v21")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestFileXXHashIsStableAndSensitiveToContent(t *testing.T) {
	pathA := writeTempFile(t, "HDRPB226144452ACME MUSIC\r\n")
	pathB := writeTempFile(t, "HDRPB226144452ACME MUSIC\r\n")
	pathC := writeTempFile(t, "HDRPB226144452DIFFERENT\r\n")

	sumA, err := FileXXHash(pathA)
	if err != nil {
		t.Fatalf("FileXXHash: %v", err)
	}
	sumB, err := FileXXHash(pathB)
	if err != nil {
		t.Fatalf("FileXXHash: %v", err)
	}
	if sumA != sumB {
		t.Fatalf("identical content should hash identically: %q != %q", sumA, sumB)
	}

	sumC, err := FileXXHash(pathC)
	if err != nil {
		t.Fatalf("FileXXHash: %v", err)
	}
	if sumA == sumC {
		t.Fatal("different content should not hash identically")
	}
}

func TestFileXXHashMissingFile(t *testing.T) {
	if _, err := FileXXHash(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected an error hashing a nonexistent file")
	}
}

func TestFileSHA256IsStable(t *testing.T) {
	path := writeTempFile(t, "TRL000010000000100000002\r\n")

	sum1, err := FileSHA256(path)
	if err != nil {
		t.Fatalf("FileSHA256: %v", err)
	}
	sum2, err := FileSHA256(path)
	if err != nil {
		t.Fatalf("FileSHA256: %v", err)
	}
	if sum1 != sum2 {
		t.Fatalf("hashing the same file twice should be stable: %q != %q", sum1, sum2)
	}
	if len(sum1) != 64 {
		t.Fatalf("SHA-256 hex digest should be 64 chars, got %d", len(sum1))
	}
}
