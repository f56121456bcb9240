package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pharmanet/pharmacy-console/internal/config"
	"github.com/pharmanet/pharmacy-console/internal/guard"
	"github.com/pharmanet/pharmacy-console/internal/service/medication"
	"github.com/pharmanet/pharmacy-console/internal/service/pharmacy"
	"github.com/pharmanet/pharmacy-console/internal/service/user"
	"github.com/pharmanet/pharmacy-console/internal/session"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
	pkgtime "github.com/pharmanet/pharmacy-console/pkg/time"
)

const stateDirName = "pharmctl"

// container holds the single session context of a CLI run and the service
// wrappers feeding from it.
type container struct {
	cfg         *config.Config
	sess        *session.Context
	clock       pkgtime.Clock
	users       *user.Service
	pharmacies  *pharmacy.Service
	medications *medication.Service
}

func newContainer(ctx context.Context, logger log.Logger) (*container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	stateDir, err := resolveStateDir()
	if err != nil {
		return nil, err
	}
	if err = applyFileConfig(cfg, stateDir); err != nil {
		return nil, err
	}

	clock := pkgtime.NewAdjustableClock()
	sess, err := session.NewContext(ctx, session.NewFileStore(stateDir), clock)
	if err != nil {
		return nil, err
	}

	tokens := func(ctx context.Context) (string, bool) {
		return sess.TokenValue(ctx)
	}
	newServiceClient := func(service config.Service) pkghttp.Client {
		return pkghttp.NewClient(
			pkghttp.WithClientDestination(string(service), cfg.ServiceURL(service)),
			pkghttp.WithRequestLogging(logger, log.LevelDebug, log.LevelWarn),
		)
	}

	return &container{
		cfg:         cfg,
		sess:        sess,
		clock:       clock,
		users:       user.NewService(newServiceClient(config.ServiceUser), tokens),
		pharmacies:  pharmacy.NewService(newServiceClient(config.ServicePharmacy), tokens),
		medications: medication.NewService(newServiceClient(config.ServiceMedication), tokens),
	}, nil
}

func resolveStateDir() (string, error) {
	if dir := os.Getenv("PHARMCTL_STATE_DIR"); dir != "" {
		return dir, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve state directory: %w", err)
	}
	return filepath.Join(configDir, stateDirName), nil
}

// requireRole refuses the command before it runs when the stored session
// does not pass the guard for the allowed roles.
func (c *container) requireRole(roles ...session.Role) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		var token *session.Token
		var user *session.UserProfile
		if t, u, held := c.sess.Current(); held {
			token, user = &t, &u
		}

		if guard.Decide(token, user, c.clock.Now(cmd.Context()), roles...) == guard.Redirect {
			return fmt.Errorf("not authorized for this command, run %q first", "pharmctl login")
		}
		return nil
	}
}

func printJSON(cmd *cobra.Command, data any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	cmd.Println(string(encoded))
	return nil
}

// NewRootCommand assembles the pharmctl command tree.
func NewRootCommand(ctx context.Context, logger log.Logger) (*cobra.Command, error) {
	c, err := newContainer(ctx, logger)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:           "pharmctl",
		Short:         "Administrative console for the pharmacy network",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		c.newLoginCommand(),
		c.newLogoutCommand(),
		c.newWhoamiCommand(),
		c.newUsersCommand(),
		c.newSalesCommand(),
		c.newInventoryCommand(),
		c.newMedsCommand(),
	)
	return root, nil
}
