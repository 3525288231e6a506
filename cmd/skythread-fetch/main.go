// skythread-fetch is a debugging CLI: it resolves a post locator, pulls the
// thread straight from the AppView, flattens it, and prints JSON. No stores
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"skythread/internal/adapters/appview"
	"skythread/internal/core/aturi"
	"skythread/internal/core/thread"
	perr "skythread/internal/platform/errors"
	"skythread/internal/platform/logger"
)

func main() {
	_ = godotenv.Load()

	var (
		fURL       = flag.String("url", "", "post locator: bsky.app URL or at:// URI (required)")
		fDepth     = flag.Int("depth", 80, "reply depth requested upstream (max 1000)")
		fNoFlatten = flag.Bool("no-flatten", false, "keep same-author continuations nested")
		fTimeout   = flag.Duration("timeout", 30*time.Second, "overall deadline")
		fBaseURL   = flag.String("appview", "", "AppView base URL override")
	)
	flag.Parse()

	l := logger.Get()
	if *fURL == "" {
		flag.Usage()
		l.Fatal().Msg("skythread-fetch: -url is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *fTimeout)
	defer cancel()

	client := appview.NewClient(appview.Options{
		BaseURL:   *fBaseURL,
		UserAgent: "skythread-fetch",
	})

	uri, err := resolveLocator(ctx, client, *fURL)
	if err != nil {
		l.Fatal().Err(err).Str("url", *fURL).Msg("skythread-fetch: resolve failed")
	}

	th, err := client.GetPostThread(ctx, uri, *fDepth)
	if err != nil {
		l.Fatal().Err(err).Str("uri", uri).Msg("skythread-fetch: thread fetch failed")
	}
	root := th.Thread
	if !root.IsThreadViewPost() {
		l.Fatal().Str("uri", uri).Str("variant", root.Type).Msg("skythread-fetch: anchor is not available")
	}

	opts := thread.DefaultOptions()
	if *fNoFlatten {
		opts.FlattenSameAuthorThreads = false
	}

	post := appview.MapPost(root.Post)
	comments := thread.Flatten(appview.MapNodes(root.Replies), post.Author.DID, 0, opts)

	out := struct {
		Post         *thread.Post     `json:"post"`
		Comments     []thread.Comment `json:"comments"`
		CommentCount int              `json:"comment_count"`
	}{post, comments, thread.Count(comments)}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		l.Fatal().Err(err).Msg("skythread-fetch: encode failed")
	}
}

// resolveLocator turns either locator form into the canonical at:// URI
func resolveLocator(ctx context.Context, client *appview.Client, raw string) (string, error) {
	if ref, ok := aturi.ParseWebURL(raw); ok {
		did := ref.Identifier
		if !aturi.IsDID(did) {
			resolved, err := client.ResolveHandle(ctx, did)
			if err != nil {
				return "", err
			}
			did = resolved
		}
		return aturi.PostURI(did, ref.RKey), nil
	}
	if _, _, ok := aturi.ParseURI(raw); ok {
		return raw, nil
	}
	return "", perr.InvalidArgf("unrecognized post locator %q", raw)
}
