package appview

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"

	perr "skythread/internal/platform/errors"
)

// Thread is the getPostThread response: the anchor post with its reply tree
type Thread struct {
	Thread ThreadNode `json:"thread"`
}

// GetPostThread fetches the thread around the given at:// post URI
// depth bounds how many reply levels the AppView descends (server max 1000)
func (c *Client) GetPostThread(ctx context.Context, uri string, depth int) (Thread, error) {
	params := url.Values{}
	params.Set("uri", uri)
	if depth > 0 {
		params.Set("depth", strconv.Itoa(depth))
	}

	resp, err := c.Query(ctx, "app.bsky.feed.getPostThread", params)
	if err != nil {
		return Thread{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("uri", uri).Msg("appview close body failed")
		}
	}()

	var out Thread
	b, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return Thread{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "appview read thread body")
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return Thread{}, perr.Wrapf(err, perr.ErrorCodeJSON, "appview decode thread")
	}
	return out, nil
}

// ResolveHandle resolves a handle to its DID
func (c *Client) ResolveHandle(ctx context.Context, handle string) (string, error) {
	params := url.Values{}
	params.Set("handle", handle)

	resp, err := c.Query(ctx, "com.atproto.identity.resolveHandle", params)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("handle", handle).Msg("appview close body failed")
		}
	}()

	var out struct {
		DID string `json:"did"`
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "appview read resolve body")
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "appview decode resolve")
	}
	if out.DID == "" {
		return "", perr.Newf(perr.ErrorCodeNotFound, "appview: no did for handle %s", handle)
	}
	return out.DID, nil
}
