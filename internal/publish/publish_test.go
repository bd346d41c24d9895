package publish

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/errors"
)

type fakeUploader struct {
	inputs []*s3.PutObjectInput
	bodies []string
	err    error
}

func (f *fakeUploader) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(body))
	return &s3.PutObjectOutput{ETag: aws.String(`"abc123"`)}, nil
}

func TestPublishUploadsSnapshot(t *testing.T) {
	up := &fakeUploader{}
	cfg := config.New().Publish
	cfg.Bucket = "gallery"
	cfg.Key = "widgets/index.html"

	res, err := Publish(context.Background(), up, cfg, []byte("<html></html>"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Location() != "s3://gallery/widgets/index.html" || res.ETag != `"abc123"` || res.Size != 13 {
		t.Errorf("unexpected result %+v", res)
	}
	if len(up.inputs) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(up.inputs))
	}
	in := up.inputs[0]
	if aws.ToString(in.Bucket) != "gallery" || aws.ToString(in.Key) != "widgets/index.html" {
		t.Errorf("unexpected target %s/%s", aws.ToString(in.Bucket), aws.ToString(in.Key))
	}
	if aws.ToString(in.ContentType) != ContentType {
		t.Errorf("unexpected content type %q", aws.ToString(in.ContentType))
	}
	if aws.ToString(in.CacheControl) != "no-cache" {
		t.Errorf("unexpected cache control %q", aws.ToString(in.CacheControl))
	}
	if up.bodies[0] != "<html></html>" {
		t.Errorf("unexpected body %q", up.bodies[0])
	}
}

func TestPublishDefaultsKey(t *testing.T) {
	up := &fakeUploader{}
	res, err := Publish(context.Background(), up, config.PublishConfig{Bucket: "b"}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Key != config.DefaultKey {
		t.Errorf("expected %q, got %q", config.DefaultKey, res.Key)
	}
	if up.inputs[0].CacheControl != nil {
		t.Error("expected no cache control")
	}
}

func TestPublishRequiresBucket(t *testing.T) {
	up := &fakeUploader{}
	_, err := Publish(context.Background(), up, config.PublishConfig{}, []byte("x"), nil)
	if !errors.HasCode(err, "E171") {
		t.Fatalf("expected E171, got %v", err)
	}
	if len(up.inputs) != 0 {
		t.Error("expected no upload")
	}
}

func TestPublishWrapsUploadFailure(t *testing.T) {
	up := &fakeUploader{err: io.ErrUnexpectedEOF}
	_, err := Publish(context.Background(), up, config.PublishConfig{Bucket: "b"}, []byte("x"), nil)
	if !errors.HasCode(err, "E170") {
		t.Fatalf("expected E170, got %v", err)
	}
	if !stderrors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected the upload error to be wrapped, got %v", err)
	}
}

func TestSnapshotIsStatic(t *testing.T) {
	cfg := config.New()
	cfg.Title = "Snapshot"

	body, err := Snapshot(cfg)
	if err != nil {
		t.Fatal(err)
	}
	html := string(body)
	if !strings.Contains(html, "<title>Snapshot</title>") || !strings.Contains(html, `data-widget="tabs"`) {
		t.Error("expected the rendered gallery")
	}
	if strings.Contains(html, "<script>") {
		t.Error("snapshot must not carry the client script")
	}
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	if _, err := envCredentials(context.Background()); err == nil {
		t.Error("expected an error without credentials")
	}

	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_SESSION_TOKEN", "token")
	creds, err := envCredentials(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if creds.AccessKeyID != "id" || creds.SecretAccessKey != "secret" || creds.SessionToken != "token" {
		t.Errorf("unexpected credentials %+v", creds)
	}
}

func TestNewClientOptions(t *testing.T) {
	c := NewClient(config.PublishConfig{Region: "eu-west-1", Endpoint: "http://localhost:9000", PathStyle: true})
	o := c.Options()
	if o.Region != "eu-west-1" || !o.UsePathStyle || aws.ToString(o.BaseEndpoint) != "http://localhost:9000" {
		t.Errorf("unexpected options %+v", o)
	}
}
