package podmerge

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	applycmd "github.com/arthur-debert/podmerge/cmd/podmerge/commands/apply"
	initcmd "github.com/arthur-debert/podmerge/cmd/podmerge/commands/initialize"
	installcmd "github.com/arthur-debert/podmerge/cmd/podmerge/commands/install"
	removecmd "github.com/arthur-debert/podmerge/cmd/podmerge/commands/remove"
	statuscmd "github.com/arthur-debert/podmerge/cmd/podmerge/commands/status"
	"github.com/arthur-debert/podmerge/pkg/cocoapods"
	"github.com/arthur-debert/podmerge/pkg/config"
	"github.com/arthur-debert/podmerge/pkg/errors"
	"github.com/arthur-debert/podmerge/pkg/filesystem"
	"github.com/arthur-debert/podmerge/pkg/merge"
	"github.com/arthur-debert/podmerge/pkg/paths"
	"github.com/arthur-debert/podmerge/pkg/platform"
	"github.com/arthur-debert/podmerge/pkg/pluginspec"
	"github.com/arthur-debert/podmerge/pkg/style"
	"github.com/arthur-debert/podmerge/pkg/types"
	"github.com/arthur-debert/podmerge/pkg/xcconfig"
)

// appContext bundles the collaborators every command needs.
type appContext struct {
	fs          types.FS
	cfg         *config.Config
	paths       *paths.Paths
	projectName string
	manager     *merge.Manager
}

// newAppContext resolves the project directory, loads configuration,
// and wires the merge manager with explicit collaborators.
func newAppContext(cmd *cobra.Command) (*appContext, error) {
	projectDir, _ := cmd.Flags().GetString("project-dir")

	bootstrap, err := paths.New(projectDir, "", "")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(bootstrap.ProjectDir())
	if err != nil {
		return nil, err
	}

	p, err := paths.New(bootstrap.ProjectDir(), cfg.Project.Podfile, cfg.Plugins.Dir)
	if err != nil {
		return nil, err
	}

	projectName := cfg.Project.Name
	if projectName == "" {
		projectName = p.ProjectName()
	}

	fs := filesystem.NewOS()
	engine := merge.NewEngine(projectName, cfg.Hook.Name, platform.NewDelegate())
	manager := merge.NewManager(fs, engine, p.ManifestPath())

	return &appContext{
		fs:          fs,
		cfg:         cfg,
		paths:       p,
		projectName: projectName,
		manager:     manager,
	}, nil
}

func newApplyCmd() *cobra.Command {
	var owner, pluginDir string

	cmd := &cobra.Command{
		Use:     "apply [fragment]",
		Short:   applycmd.MsgShort,
		Long:    applycmd.MsgLong,
		Example: applycmd.MsgExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}

			if pluginDir != "" {
				return applyPlugin(app, pluginDir)
			}

			if len(args) == 0 {
				return errors.New(errors.ErrInvalidInput, "a fragment path or --plugin is required")
			}
			fragmentPath, err := filepath.Abs(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "invalid fragment path %q", args[0])
			}
			if owner == "" {
				owner = filepath.Base(filepath.Dir(fragmentPath))
			}

			if err := app.manager.Apply(fragmentPath, owner); err != nil {
				return err
			}
			fmt.Println(style.SuccessStyle.Render(fmt.Sprintf("Applied %s to %s", owner, app.manager.ManifestPath())))
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", applycmd.MsgFlagOwner)
	cmd.Flags().StringVar(&pluginDir, "plugin", "", applycmd.MsgFlagPlugin)
	cmd.MarkFlagsMutuallyExclusive("owner", "plugin")

	return cmd
}

// applyPlugin resolves a plugin directory through its manifest and
// applies whatever iOS contribution it declares.
func applyPlugin(app *appContext, pluginDir string) error {
	dir, err := filepath.Abs(pluginDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid plugin directory %q", pluginDir)
	}

	spec, err := pluginspec.Load(app.fs, dir)
	if err != nil {
		return err
	}

	switch {
	case spec.FragmentPath != "":
		err = app.manager.Apply(spec.FragmentPath, spec.ID)
	case spec.SyntheticFragment() != "":
		err = app.manager.ApplyFragment(types.Fragment{
			Path:  filepath.Join(dir, pluginspec.ManifestFileName),
			Owner: spec.ID,
			Text:  spec.SyntheticFragment(),
		})
	default:
		return errors.Newf(errors.ErrInvalidInput, "plugin %q declares no iOS contribution", spec.ID)
	}
	if err != nil {
		return err
	}

	fmt.Println(style.SuccessStyle.Render(fmt.Sprintf("Applied %s to %s", spec.ID, app.manager.ManifestPath())))
	return nil
}

func newRemoveCmd() *cobra.Command {
	var fragmentPath string

	cmd := &cobra.Command{
		Use:     "remove <owner>",
		Short:   removecmd.MsgShort,
		Long:    removecmd.MsgLong,
		Example: removecmd.MsgExample,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}

			owner := args[0]
			if err := app.manager.Remove(fragmentPath, owner); err != nil {
				return err
			}
			fmt.Println(style.SuccessStyle.Render(fmt.Sprintf("Removed %s from %s", owner, app.manager.ManifestPath())))
			return nil
		},
	}

	cmd.Flags().StringVar(&fragmentPath, "fragment", "", removecmd.MsgFlagFragment)

	return cmd
}

func newStatusCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "status",
		Short:   statuscmd.MsgShort,
		Long:    statuscmd.MsgLong,
		Example: statuscmd.MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}

			statuses, err := app.manager.Status()
			if err != nil {
				return err
			}

			switch format {
			case "json":
				data, err := json.MarshalIndent(statuses, "", "  ")
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "failed to encode status")
				}
				fmt.Println(string(data))
			case "yaml":
				data, err := yaml.Marshal(statuses)
				if err != nil {
					return errors.Wrap(err, errors.ErrInternal, "failed to encode status")
				}
				fmt.Print(string(data))
			case "text":
				fmt.Println(style.RenderOwnerStatus(statuses))
			default:
				return errors.Newf(errors.ErrInvalidInput, "unknown format %q (want text, json, or yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", statuscmd.MsgFlagFormat)

	return cmd
}

func newInstallCmd() *cobra.Command {
	var noPod bool

	cmd := &cobra.Command{
		Use:     "install",
		Short:   installcmd.MsgShort,
		Long:    installcmd.MsgLong,
		Example: installcmd.MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}

			specs, err := pluginspec.Discover(app.fs, app.paths.PluginsDir())
			if err != nil {
				return err
			}

			for _, spec := range specs {
				if spec.FragmentPath != "" {
					err = app.manager.Apply(spec.FragmentPath, spec.ID)
				} else if synth := spec.SyntheticFragment(); synth != "" {
					err = app.manager.ApplyFragment(types.Fragment{
						Path:  filepath.Join(app.paths.PluginsDir(), spec.ID, pluginspec.ManifestFileName),
						Owner: spec.ID,
						Text:  synth,
					})
				} else {
					continue
				}
				if err != nil {
					return err
				}
			}

			if err := mergeLinkerConfigs(app, specs); err != nil {
				return err
			}

			fmt.Println(style.SuccessStyle.Render(fmt.Sprintf("Merged %d plugin(s) into %s", len(specs), app.manager.ManifestPath())))

			if noPod {
				return nil
			}
			runner := cocoapods.NewRunner(app.cfg.Pods.Binary, app.cfg.Pods.TimeoutDuration())
			return runner.Install(cmd.Context(), app.paths.ProjectDir())
		},
	}

	cmd.Flags().BoolVar(&noPod, "no-pod", false, installcmd.MsgFlagNoPod)

	return cmd
}

// mergeLinkerConfigs folds each plugin's build.xcconfig into the
// project-level Plugins.xcconfig.
func mergeLinkerConfigs(app *appContext, specs []*pluginspec.Spec) error {
	target := filepath.Join(app.paths.ProjectDir(), "Plugins.xcconfig")

	merged := ""
	if raw, err := app.fs.ReadFile(target); err == nil {
		merged = string(raw)
	}

	found := false
	for _, spec := range specs {
		overlayPath := filepath.Join(app.paths.PluginsDir(), spec.ID, "build.xcconfig")
		raw, err := app.fs.ReadFile(overlayPath)
		if err != nil {
			continue
		}
		merged = xcconfig.Merge(merged, string(raw))
		found = true
	}

	if !found {
		return nil
	}
	if err := app.fs.WriteFile(target, []byte(merged), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "failed to write linker config %q", target)
	}
	return nil
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init",
		Short:   initcmd.MsgShort,
		Long:    initcmd.MsgLong,
		Example: initcmd.MsgExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd)
			if err != nil {
				return err
			}

			path := filepath.Join(app.paths.ProjectDir(), ".podmerge.toml")
			if _, err := app.fs.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput, "%s already exists (use --force to overwrite)", path)
			}

			if err := config.WriteStarter(app.fs, path, app.projectName); err != nil {
				return err
			}
			fmt.Println(style.SuccessStyle.Render("Wrote " + path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, initcmd.MsgFlagForce)

	return cmd
}
