package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/partyplan/faq/internal/faq"
	"github.com/partyplan/faq/internal/faqclient"
)

const (
	keyAPIURL      = "api-url"
	keyToken       = "token"
	keyInviteToken = "invite-token"
	keyEvent       = "event"
	keyDebug       = "debug"
)

// cli holds settings shared by all subcommands.
type cli struct {
	v       *viper.Viper
	envFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:          "faqctl",
		Short:        "Inspect and reorder the FAQ of an event",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.loadConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.envFile, "env-file", ".env", "optional dotenv file")
	flags.String(keyAPIURL, "http://localhost:3000", "FAQ API base URL (FAQ_API_URL)")
	flags.String(keyToken, "", "access token of a registered user (FAQ_TOKEN)")
	flags.String(keyInviteToken, "", "invite token of a guest (FAQ_INVITE_TOKEN)")
	flags.Int(keyEvent, 0, "event id (FAQ_EVENT)")
	flags.Bool(keyDebug, false, "enable debug logging (FAQ_DEBUG)")

	root.AddCommand(
		c.showCmd(),
		c.moveCmd(),
		c.reorderCmd(),
		c.askCmd(),
		c.categoryMoveCmd(),
	)

	return root
}

func (c *cli) loadConfig(cmd *cobra.Command) error {
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", c.envFile, err)
		}
	}

	c.v.SetEnvPrefix("faq")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return c.v.BindPFlags(cmd.Flags())
}

func (c *cli) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.v.GetBool(keyDebug) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// editor loads the FAQ of the configured event.
func (c *cli) editor(ctx context.Context, cmd *cobra.Command) (*faqclient.Editor, error) {
	eventID := c.v.GetInt(keyEvent)
	if eventID <= 0 {
		return nil, errors.New("event id is required (--event or FAQ_EVENT)")
	}

	client := faqclient.New(c.v.GetString(keyAPIURL),
		faqclient.WithToken(c.v.GetString(keyToken)),
		faqclient.WithInviteToken(c.v.GetString(keyInviteToken)),
	)

	e := faqclient.NewEditor(client, eventID, c.logger(cmd.ErrOrStderr()))
	if err := e.Load(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the FAQ grouped by container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := c.editor(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			printSnapshot(cmd.OutOrStdout(), e.Snapshot())
			return nil
		},
	}
}

func (c *cli) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <question> <container>",
		Short: "Move a question to the end of a container (category id, published or drafts)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			questionID, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := c.editor(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			_, from, ok := e.Find(questionID)
			if !ok {
				return fmt.Errorf("question %d not found", questionID)
			}

			out := e.DragEnd(faq.DragEndEvent{
				Active: faq.DragItem{ID: questionID, ContainerID: from.String()},
				Over:   &faq.DropTarget{ContainerID: args[1]},
			})
			return c.save(cmd, e, out)
		},
	}
}

func (c *cli) reorderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <question> <over-question>",
		Short: "Drop a question onto another one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			questionID, err := parseID(args[0])
			if err != nil {
				return err
			}
			overID, err := parseID(args[1])
			if err != nil {
				return err
			}

			e, err := c.editor(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			_, from, ok := e.Find(questionID)
			if !ok {
				return fmt.Errorf("question %d not found", questionID)
			}
			_, to, ok := e.Find(overID)
			if !ok {
				return fmt.Errorf("question %d not found", overID)
			}

			out := e.DragEnd(faq.DragEndEvent{
				Active: faq.DragItem{ID: questionID, ContainerID: from.String()},
				Over:   &faq.DropTarget{ID: overID, ContainerID: to.String()},
			})
			return c.save(cmd, e, out)
		},
	}
}

func (c *cli) askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <text>",
		Short: "Submit a new question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.editor(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			q, err := e.Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "question %d added to %s\n", q.ID, faq.ContainerOf(q))
			return nil
		},
	}
}

func (c *cli) categoryMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "category-move <category> <over-category>",
		Short: "Move a category to the position of another one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromID, err := parseID(args[0])
			if err != nil {
				return err
			}
			toID, err := parseID(args[1])
			if err != nil {
				return err
			}

			e, err := c.editor(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			from, ok := e.CategoryIndex(fromID)
			if !ok {
				return fmt.Errorf("category %d not found", fromID)
			}
			to, ok := e.CategoryIndex(toID)
			if !ok {
				return fmt.Errorf("category %d not found", toID)
			}

			if err := e.MoveCategory(from, to); err != nil {
				return err
			}

			out := faq.Reordered
			if from == to {
				out = faq.NoOp
			}
			return c.save(cmd, e, out)
		},
	}
}

func (c *cli) save(cmd *cobra.Command, e *faqclient.Editor, out faq.Outcome) error {
	w := cmd.OutOrStdout()
	if out == faq.NoOp || !e.Dirty() {
		fmt.Fprintln(w, "nothing changed")
		return nil
	}

	if err := e.Save(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s, saved\n", out)
	printSnapshot(w, e.Snapshot())
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func printSnapshot(w io.Writer, s faq.Snapshot) {
	for _, c := range s.Categories {
		fmt.Fprintf(w, "[%d] %s\n", c.ID, c.Name)
		printQuestions(w, c.Questions)
	}

	fmt.Fprintln(w, "[published] Uncategorized")
	printQuestions(w, s.Uncategorized)

	fmt.Fprintln(w, "[drafts] Drafts")
	printQuestions(w, s.Drafts)
}

func printQuestions(w io.Writer, list []faq.Question) {
	for _, q := range list {
		answer := "-"
		if q.Answer != nil {
			answer = *q.Answer
		}
		fmt.Fprintf(w, "  %d. #%d %s => %s\n", q.Order(), q.ID, q.Text, answer)
	}
}
