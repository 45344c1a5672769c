package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// ErrInvalidDiscordID is returned when a member's Discord id is not a snowflake
var ErrInvalidDiscordID = errors.New("invalid discord id")

// DirectMessenger is the part of the Discord REST API used to DM a user
type DirectMessenger interface {
	CreateDMChannel(userID snowflake.ID, opts ...rest.RequestOpt) (*discord.DMChannel, error)
	CreateMessage(channelID snowflake.ID, messageCreate discord.MessageCreate, opts ...rest.RequestOpt) (*discord.Message, error)
}

// Client sends direct messages through a bot account. Only the REST API is
// used; the gateway is never opened.
type Client struct {
	rest DirectMessenger
	bot  bot.Client
}

// NewClient builds a REST-only bot client for the given token
func NewClient(token string) (*Client, error) {
	client, err := disgo.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord client: %w", err)
	}
	return &Client{rest: client.Rest(), bot: client}, nil
}

// NewClientWithRest wraps an existing REST implementation
func NewClientWithRest(r DirectMessenger) *Client {
	return &Client{rest: r}
}

// SendDirectMessage opens (or reuses) the DM channel with the user and posts content
func (c *Client) SendDirectMessage(ctx context.Context, discordID string, content string) error {
	userID, err := snowflake.Parse(discordID)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidDiscordID, discordID, err)
	}

	dmChannel, err := c.rest.CreateDMChannel(userID, rest.WithCtx(ctx))
	if err != nil {
		return fmt.Errorf("failed to create DM channel: %w", err)
	}

	if _, err := c.rest.CreateMessage(dmChannel.ID(), discord.MessageCreate{Content: content}, rest.WithCtx(ctx)); err != nil {
		return fmt.Errorf("failed to send DM: %w", err)
	}

	return nil
}

// Close releases the underlying bot client
func (c *Client) Close(ctx context.Context) error {
	if c.bot != nil {
		c.bot.Close(ctx)
	}
	return nil
}
