package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestLocalStorage_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "storage/")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	loc, err := s.Put(context.Background(), "Beach.PNG", "image/png", strings.NewReader("data"), 4)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasPrefix(loc, "/storage/") || !strings.HasSuffix(loc, ".png") {
		t.Fatalf("unexpected location %q", loc)
	}

	stored := filepath.Join(dir, filepath.Base(loc))
	data, err := os.ReadFile(stored)
	if err != nil || string(data) != "data" {
		t.Fatalf("stored file mismatch: %q, %v", data, err)
	}

	if err := s.Delete(context.Background(), loc); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err %v", err)
	}
	if err := s.Delete(context.Background(), loc); err != nil {
		t.Fatalf("Delete of missing file should succeed, got %v", err)
	}
}

func TestLocalStorage_DeleteRejectsForeignLocation(t *testing.T) {
	s, _ := NewLocalStorage(t.TempDir(), "/storage")

	for _, loc := range []string{"/other/x.png", "/storage/../etc/passwd", "https://cdn/x.png", "/storage/..", "/storage/.", `/storage/..\x`} {
		if err := s.Delete(context.Background(), loc); err == nil {
			t.Fatalf("expected error for %q", loc)
		}
	}
	if _, err := os.Stat(s.Dir()); err != nil {
		t.Fatalf("storage dir must survive: %v", err)
	}
}

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	deletes []*s3.DeleteObjectInput
	body    []byte
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, in)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, in)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Storage_PutAndDelete(t *testing.T) {
	fake := &fakeS3{}
	s := newS3Storage(fake, S3Config{Endpoint: "http://127.0.0.1:9000/", Bucket: "photos"})

	loc, err := s.Put(context.Background(), "a.jpeg", "image/jpeg", bytes.NewReader([]byte("jpg")), 3)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasPrefix(loc, "http://127.0.0.1:9000/photos/photos/") || !strings.HasSuffix(loc, ".jpg") {
		t.Fatalf("unexpected location %q", loc)
	}
	if len(fake.puts) != 1 || aws.ToString(fake.puts[0].ContentType) != "image/jpeg" || string(fake.body) != "jpg" {
		t.Fatalf("unexpected put: %+v", fake.puts)
	}

	if err := s.Delete(context.Background(), loc); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if aws.ToString(fake.deletes[0].Key) != aws.ToString(fake.puts[0].Key) {
		t.Fatalf("deleted key %q, stored key %q", aws.ToString(fake.deletes[0].Key), aws.ToString(fake.puts[0].Key))
	}
}

func TestS3Storage_AWSLocationIsAbsolute(t *testing.T) {
	fake := &fakeS3{}
	s := newS3Storage(fake, S3Config{Region: "us-east-1", Bucket: "photos"})

	loc, err := s.Put(context.Background(), "a.png", "image/png", strings.NewReader("x"), 1)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if !strings.HasPrefix(loc, "https://photos.s3.us-east-1.amazonaws.com/photos/") {
		t.Fatalf("expected absolute bucket URL, got %q", loc)
	}
	if err := s.Delete(context.Background(), loc); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if aws.ToString(fake.deletes[0].Key) != aws.ToString(fake.puts[0].Key) {
		t.Fatalf("deleted key %q, stored key %q", aws.ToString(fake.deletes[0].Key), aws.ToString(fake.puts[0].Key))
	}
}

func TestS3Storage_PutError(t *testing.T) {
	s := newS3Storage(&fakeS3{err: errors.New("boom")}, S3Config{PublicURL: "https://cdn.example.com", Bucket: "b"})

	if _, err := s.Put(context.Background(), "a.png", "image/png", strings.NewReader("x"), 1); err == nil {
		t.Fatalf("expected error")
	}
}
