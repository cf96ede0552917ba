// Package uploads adapts the external object store holding profile photos.
// Only two operations are needed (store an image, destroy one uploaded by a
// registration that later failed), so the adapter signs the REST calls
// directly rather than pulling in an SDK.
package uploads

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const profileFolder = "campus-connect/profiles"

// Asset identifies a stored object: the serving URL plus the provider id
// needed to destroy it.
type Asset struct {
	URL      string
	PublicID string
}

// Storage stores and removes binary assets.
type Storage interface {
	Upload(ctx context.Context, filename string, r io.Reader) (*Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

// Cloudinary implements Storage against the Cloudinary upload API.
type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
	BaseURL   string
	Client    *http.Client
}

func NewCloudinary(cloudName, apiKey, apiSecret string) *Cloudinary {
	return &Cloudinary{
		CloudName: cloudName,
		APIKey:    apiKey,
		APISecret: apiSecret,
		BaseURL:   "https://api.cloudinary.com",
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Cloudinary) Upload(ctx context.Context, filename string, r io.Reader) (*Asset, error) {
	publicID := profileFolder + "/profile-" + uuid.NewString()
	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}

	var body strings.Builder
	mw := multipart.NewWriter(&body)
	for k, v := range params {
		if err := mw.WriteField(k, v); err != nil {
			return nil, err
		}
	}
	if err := mw.WriteField("api_key", c.APIKey); err != nil {
		return nil, err
	}
	if err := mw.WriteField("signature", c.sign(params)); err != nil {
		return nil, err
	}
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var res uploadResult
	if err := c.post(ctx, "upload", mw.FormDataContentType(), strings.NewReader(body.String()), &res); err != nil {
		return nil, err
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	return &Asset{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("api_key", c.APIKey)
	form.Set("signature", c.sign(params))

	var res uploadResult
	if err := c.post(ctx, "destroy", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &res); err != nil {
		return err
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy: %s", res.Error.Message)
	}
	return nil
}

func (c *Cloudinary) post(ctx context.Context, action, contentType string, body io.Reader, out any) error {
	endpoint := fmt.Sprintf("%s/v1_1/%s/image/%s", c.BaseURL, c.CloudName, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}

// sign produces the API signature: sha1 over the sorted params joined as a
// query string, with the secret appended.
func (c *Cloudinary) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.APISecret))
	return hex.EncodeToString(sum[:])
}
