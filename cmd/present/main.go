// PresentAPIClient - Go client for the Present social video API
// Copyright 2026 Present, Inc.
// SPDX-License-Identifier: MIT
// https://github.com/Present-Inc/PresentAPIClient-sub000

// Package main is a small command-line front end for the Present API
// client, mainly useful for smoke-testing an account:
//
//	present login -username alice -password secret
//	present whoami
//	present feed
//	present like -video 5331f7b1c8bd3c383a0e8fdb
//	present comment -video 5331f7b1c8bd3c383a0e8fdb -body "nice one"
//	present logout
//
// Configuration is loaded the same way as for any other client: built-in
// defaults, an optional present.yaml, then PRESENT_* environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Present-Inc/PresentAPIClient-sub000/client"
	"github.com/Present-Inc/PresentAPIClient-sub000/config"
	"github.com/Present-Inc/PresentAPIClient-sub000/internal/logging"
	"github.com/Present-Inc/PresentAPIClient-sub000/models"
)

const commandTimeout = 30 * time.Second

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "present:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	c, err := client.New(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	switch args[0] {
	case "login":
		return cmdLogin(ctx, c, args[1:])
	case "logout":
		return c.UserContexts.Destroy(ctx)
	case "whoami":
		return cmdWhoami(ctx, c)
	case "feed":
		return cmdFeed(ctx, c, args[1:])
	case "like":
		return cmdLike(ctx, c, args[1:])
	case "comment":
		return cmdComment(ctx, c, args[1:])
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdLogin(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	uc, err := c.UserContexts.Create(ctx, *username, *password)
	if err != nil {
		return err
	}
	fmt.Printf("logged in as user %s\n", uc.ResolvedUserID())
	return nil
}

func cmdWhoami(ctx context.Context, c *client.Client) error {
	userID := c.Session().CurrentUserID()
	if userID == "" {
		return fmt.Errorf("not logged in")
	}

	user, err := c.Users.Show(ctx, userID)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\n", user.Username, user.ID)
	return nil
}

func cmdFeed(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("feed", flag.ExitOnError)
	cursor := fs.Int("cursor", 0, "pagination cursor")
	limit := fs.Int("limit", 0, "results per page (server default when 0)")
	fs.Parse(args)

	page, err := c.Videos.ListHome(ctx, client.PageOptions{Cursor: *cursor, Limit: *limit})
	if err != nil {
		return err
	}
	for _, v := range page.Items {
		printVideo(v)
	}
	if page.HasMore {
		fmt.Printf("next cursor: %d\n", page.NextCursor)
	}
	return nil
}

func cmdLike(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("like", flag.ExitOnError)
	videoID := fs.String("video", "", "video id")
	fs.Parse(args)

	if _, err := c.Likes.Create(ctx, *videoID); err != nil {
		return err
	}
	fmt.Println("liked", *videoID)
	return nil
}

func cmdComment(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("comment", flag.ExitOnError)
	videoID := fs.String("video", "", "video id")
	body := fs.String("body", "", "comment text")
	fs.Parse(args)

	comment, err := c.Comments.Create(ctx, *videoID, *body)
	if err != nil {
		return err
	}
	fmt.Println("commented", comment.ID)
	return nil
}

func printVideo(v *models.Video) {
	creator := v.CreatorUserID
	if v.Creator != nil && v.Creator.Username != "" {
		creator = v.Creator.Username
	}
	live := ""
	if v.Live {
		live = " [live]"
	}
	fmt.Printf("%s  %q by %s%s  %d likes, %d views\n",
		v.ID, v.Title, creator, live, v.LikeCount, v.ViewCount)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: present <command> [flags]

commands:
  login    -username NAME -password PASS
  logout
  whoami
  feed     [-cursor N] [-limit N]
  like     -video ID
  comment  -video ID -body TEXT`)
}
