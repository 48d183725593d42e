// zhpatch — Chinese string extraction, translation, and substitution tool.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/han-tools/zhpatch/apply"
	"github.com/han-tools/zhpatch/config"
	"github.com/han-tools/zhpatch/hanscan"
	"github.com/han-tools/zhpatch/settings"
	"github.com/han-tools/zhpatch/store"
	"github.com/han-tools/zhpatch/textfile"
	"github.com/han-tools/zhpatch/translate"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zhpatch",
		Short: "Extract, translate, and substitute Chinese strings in source trees",
		Long: `zhpatch — Chinese string extraction, translation, and substitution.

Scans a source tree for embedded Chinese text, translates it with the
Google Cloud Translation API (batched), a keyless web endpoint, or a local
offline engine, and rewrites the files substituting each Chinese fragment
with its translation — longest match first, safe to re-run.

Typical workflow:
  zhpatch scan ./src              See what would be translated
  zhpatch auth set-key            Store a Google API key (optional)
  zhpatch translate ./src         Translate and save translations.json
  zhpatch apply ./src             Rewrite files using the store

Without an API key, --web uses the keyless web endpoint and --local-cmd
uses an offline engine (argos-translate by default).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newScanCmd(),
		newTranslateCmd(),
		newApplyCmd(),
		newStatusCmd(),
		newImportCmd(),
		newExportCmd(),
		newAuthCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("zhpatch version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}
}

// ---------------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------------

// loadProjectConfig reads .zhpatch.yaml from the scan root, tolerating its
// absence. A malformed file is fatal — silently ignoring it would run with
// wrong settings.
func loadProjectConfig(root string) *config.File {
	cfg, err := config.Load(root)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	return cfg
}

// resolveStorePath picks the store location: flag, then config, then the
// default name in the current directory.
func resolveStorePath(flagValue string, cfg *config.File) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.Store != "" {
		return cfg.Store
	}
	return store.DefaultFileName
}

// walkOptions builds tree-walk options that never visit the store file
// itself or any configured extra exclusions.
func walkOptions(storePath string, cfg *config.File) textfile.WalkOptions {
	opts := textfile.WalkOptions{
		Exclude: map[string]bool{filepath.Base(storePath): true},
	}
	if cfg != nil {
		for _, dir := range cfg.ExcludeDirs {
			opts.Exclude[dir] = true
		}
		opts.ExtraExtensions = cfg.Extensions
	}
	return opts
}

// collectStrings extracts the unique Chinese strings under path, which may
// be a single file or a directory tree. Returns the sorted strings and the
// files skipped because no encoding could decode them.
func collectStrings(path string, opts textfile.WalkOptions) ([]string, []string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot access %s: %w", path, err)
	}

	seen := map[string]bool{}
	var skipped []string

	scanOne := func(p string) error {
		content, _, err := textfile.Read(p)
		if err != nil {
			var de *textfile.DecodeError
			if errors.As(err, &de) {
				skipped = append(skipped, p)
				return nil
			}
			return err
		}
		for _, s := range hanscan.Extract(content) {
			seen[s] = true
		}
		return nil
	}

	if info.IsDir() {
		err = textfile.Walk(path, opts, scanOne)
	} else {
		err = scanOne(path)
	}
	if err != nil {
		return nil, nil, err
	}

	strs := make([]string, 0, len(seen))
	for s := range seen {
		strs = append(strs, s)
	}
	sort.Strings(strs)
	return strs, skipped, nil
}

// loadStoreOrDie loads the translation store, treating a malformed file as
// fatal before anything is mutated.
func loadStoreOrDie(path string) store.Store {
	s, err := store.Load(path)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	return s
}

// fileExists returns true if the file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// newProgressBar builds the translation progress bar.
func newProgressBar(total int, label string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription(fmt.Sprintf("[cyan]%s[reset]", label)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// ---------------------------------------------------------------------------
// scan (read-only: report Chinese strings)
// ---------------------------------------------------------------------------

func newScanCmd() *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Report Chinese strings found in a file or tree",
		Long: `Scan a file or directory tree and report every unique Chinese string.

Read-only: no files are modified and nothing is translated. Strings already
present in the translation store are marked. Useful to preview what
'zhpatch translate' would send to the translators.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			cfg := loadProjectConfig(root)
			storePath = resolveStorePath(storePath, cfg)

			strs, skipped, err := collectStrings(root, walkOptions(storePath, cfg))
			if err != nil {
				logError("%v", err)
				os.Exit(1)
			}

			translated := loadStoreOrDie(storePath).Translated()
			newCount := 0
			for _, s := range strs {
				marker := " "
				if translated[s] {
					marker = "*"
				} else {
					newCount++
				}
				fmt.Printf("%s %s\n", marker, s)
			}

			for _, p := range skipped {
				logWarning("Skipped (undecodable): %s", p)
			}
			logInfo("%d unique Chinese strings (%d already translated, %d new)",
				len(strs), len(strs)-newCount, newCount)
		},
	}

	cmd.Flags().StringVarP(&storePath, "store", "o", "", "Translation store path (default translations.json)")

	return cmd
}

// ---------------------------------------------------------------------------
// translate (scan + dispatch + merge into store)
// ---------------------------------------------------------------------------

func newTranslateCmd() *cobra.Command {
	var (
		storePath string
		threshold int
		batchSize int
		apiKey    string
		web       bool
		localCmd  string
	)

	cmd := &cobra.Command{
		Use:   "translate [path]",
		Short: "Translate Chinese strings and save them to the store",
		Long: `Scan for Chinese strings, translate the new ones, and update the store.

Strings are routed by character length: strings of --threshold characters
or more go to the remote translator in batches, shorter strings (three
characters and up) go to the local engine one at a time. One- and
two-character strings are left alone — they are almost always fragments of
longer phrases that were already captured.

  --threshold -1   everything local
  --threshold 0    everything remote

Remote translator selection:
  1. Google Cloud Translation API — --api-key flag, ZHPATCH_API_KEY env
     var, or a key stored with 'zhpatch auth set-key'. The key is verified
     with a probe request before use.
  2. --web — keyless web endpoint (rate-limited, small jobs only).
  3. Neither — everything is routed to the local engine.

Failed strings are recorded as placeholders and retried on the next run.

Examples:
  zhpatch translate ./src
  zhpatch translate ./src --threshold 10 --batch-size 50
  zhpatch translate ./src --web
  zhpatch translate ./src --threshold -1 --local-cmd /opt/argos/bin/argos-translate`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			cfg := loadProjectConfig(root)
			storePath = resolveStorePath(storePath, cfg)

			if !cmd.Flags().Changed("threshold") && cfg != nil && cfg.Threshold != nil {
				threshold = *cfg.Threshold
			}
			if !cmd.Flags().Changed("batch-size") && cfg != nil && cfg.BatchSize > 0 {
				batchSize = cfg.BatchSize
			}
			if localCmd == "" && cfg != nil {
				localCmd = cfg.LocalCommand
			}

			runTranslate(root, storePath, cfg, threshold, batchSize, apiKey, web, localCmd)
		},
	}

	cmd.Flags().StringVarP(&storePath, "store", "o", "", "Translation store path (default translations.json)")
	cmd.Flags().IntVarP(&threshold, "threshold", "t", translate.DefaultThreshold, "Length cutoff between remote and local (-1 all local, 0 all remote)")
	cmd.Flags().IntVar(&batchSize, "batch-size", translate.DefaultBatchSize, "Strings per remote batch request")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Google API key (or ZHPATCH_API_KEY env var)")
	cmd.Flags().BoolVar(&web, "web", false, "Use the keyless web endpoint when no API key is available")
	cmd.Flags().StringVar(&localCmd, "local-cmd", "", "Local engine command (default argos-translate)")

	return cmd
}

func runTranslate(root, storePath string, cfg *config.File, threshold, batchSize int, apiKey string, web bool, localCmd string) {
	existing := loadStoreOrDie(storePath)

	strs, skipped, err := collectStrings(root, walkOptions(storePath, cfg))
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	for _, p := range skipped {
		logWarning("Skipped (undecodable): %s", p)
	}

	translated := existing.Translated()
	var pending []string
	for _, s := range strs {
		if !translated[s] {
			pending = append(pending, s)
		}
	}

	logInfo("Found %d unique Chinese strings, %d already translated, %d to translate",
		len(strs), len(strs)-len(pending), len(pending))
	if len(pending) == 0 {
		logSuccess("Nothing to translate")
		return
	}

	remote := resolveRemote(apiKey, web, threshold)
	local := resolveLocal(localCmd, remote, threshold)

	// Graceful cancellation: already-translated batches are kept and saved.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		logWarning("Interrupted, saving progress...")
		cancel()
	}()

	var bar *progressbar.ProgressBar
	updates := translate.Run(ctx, remote, local, pending, translate.Options{
		Threshold: threshold,
		BatchSize: batchSize,
		OnLog:     logInfo,
		OnProgress: func(done, total int) {
			if bar == nil {
				bar = newProgressBar(total, "translating")
			}
			_ = bar.Set(done)
		},
	})
	if bar != nil {
		fmt.Fprintln(os.Stderr)
	}

	merged := store.Merge(existing, updates)
	if err := merged.Save(storePath); err != nil {
		logError("%v", err)
		os.Exit(1)
	}

	failed := 0
	for _, v := range updates {
		if store.IsPlaceholder(v) {
			failed++
		}
	}
	if failed > 0 {
		logWarning("%d strings failed and will be retried on the next run", failed)
	}
	logSuccess("Translated %d strings, store saved to %s", len(updates)-failed, storePath)
}

// resolveRemote picks the remote capability: a verified Google API client,
// the keyless web endpoint, or nothing.
func resolveRemote(apiKey string, web bool, threshold int) translate.Remote {
	if threshold < 0 {
		return nil
	}

	key := settings.ResolveAPIKey(settings.ProviderGoogle, apiKey)
	if key != "" {
		g := translate.NewGoogleAPI(key)
		if err := g.Verify(context.Background()); err != nil {
			logWarning("Google API key rejected (%v)", err)
		} else {
			logInfo("Remote translator: %s", g.Name())
			return g
		}
	}

	if web {
		w := translate.NewWeb()
		logInfo("Remote translator: %s", w.Name())
		return w
	}

	if key == "" {
		logInfo("No API key found — using the local engine for everything (see 'zhpatch auth')")
	} else {
		logInfo("Falling back to the local engine for everything")
	}
	return nil
}

// resolveLocal builds the local capability, warning when the binary is not
// installed rather than failing — remote-only runs are still useful.
func resolveLocal(localCmd string, remote translate.Remote, threshold int) translate.Local {
	c := translate.NewCommand(localCmd)
	if c.Available() {
		logInfo("Local engine: %s", c.Name())
		return c
	}
	if remote == nil || threshold != 0 {
		logWarning("Local engine %q not found; its strings will be recorded as not-ready and retried", c.Name())
	}
	return nil
}

// ---------------------------------------------------------------------------
// apply (substitute translations into files)
// ---------------------------------------------------------------------------

func newApplyCmd() *cobra.Command {
	var (
		storePath string
		noBackup  bool
	)

	cmd := &cobra.Command{
		Use:   "apply [path]",
		Short: "Substitute stored translations into a file or tree",
		Long: `Rewrite files, replacing each stored Chinese string with its translation.

Longer strings are replaced before shorter ones, so a phrase always wins
over its fragments. Files are written back in the encoding they were read
with, and only when something actually changed — running apply twice is
safe. Error placeholders in the store are never applied.

Unless --no-backup is given, a directory is copied to <dir>__backup and a
single file to <file>.backup before the first modification.`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			cfg := loadProjectConfig(root)
			storePath = resolveStorePath(storePath, cfg)
			if !cmd.Flags().Changed("no-backup") && cfg != nil {
				noBackup = !cfg.BackupEnabled()
			}
			runApply(root, storePath, cfg, noBackup)
		},
	}

	cmd.Flags().StringVarP(&storePath, "store", "o", "", "Translation store path (default translations.json)")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Skip the pre-apply backup copy")

	return cmd
}

// checkApplyTarget validates a single-file apply target: the store file
// itself is never a target (rewriting its keys would corrupt it), and the
// file must pass the same text predicate the tree walk applies.
func checkApplyTarget(path, storePath string) error {
	if filepath.Base(path) == filepath.Base(storePath) {
		return fmt.Errorf("refusing to apply to the translation store itself: %s", path)
	}
	if !textfile.IsTextFile(path) {
		return fmt.Errorf("%s is not a processable text file", path)
	}
	return nil
}

func runApply(root, storePath string, cfg *config.File, noBackup bool) {
	info, err := os.Stat(root)
	if err != nil {
		logError("Cannot access %s: %v", root, err)
		os.Exit(1)
	}

	if !info.IsDir() {
		if err := checkApplyTarget(root, storePath); err != nil {
			logError("%v", err)
			os.Exit(1)
		}
	}

	s := loadStoreOrDie(storePath)
	pairs := apply.Pairs(s)
	if len(pairs) == 0 {
		logWarning("Store %s has no applicable translations", storePath)
		return
	}
	logInfo("Applying %d translations from %s", len(pairs), storePath)

	if info.IsDir() {
		if !noBackup {
			if backup, err := apply.BackupTree(root); err != nil {
				logWarning("Backup failed: %v", err)
			} else {
				logInfo("Backup: %s", backup)
			}
		}

		sum := apply.Tree(root, pairs, walkOptions(storePath, cfg))

		for _, p := range sum.Skipped {
			logWarning("Skipped (undecodable): %s", p)
		}
		for _, f := range sum.Failed {
			logWarning("Failed: %s", f)
		}
		logSuccess("%d replacements in %d of %d files", sum.Replacements, sum.FilesModified, sum.FilesScanned)
		return
	}

	if !noBackup {
		if backup, err := apply.BackupFile(root); err != nil {
			logWarning("Backup failed: %v", err)
		} else {
			logInfo("Backup: %s", backup)
		}
	}

	modified, n, err := apply.File(root, pairs)
	if err != nil {
		logError("%v", err)
		os.Exit(1)
	}
	if modified {
		logSuccess("%d replacements in %s", n, root)
	} else {
		logInfo("No occurrences found in %s", root)
	}
}

// ---------------------------------------------------------------------------
// status (store statistics)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show translation store statistics",
		Long: `Show how many strings the store holds, how many translated successfully,
and which ones failed and are waiting for a retry.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadProjectConfig(".")
			storePath = resolveStorePath(storePath, cfg)

			if !fileExists(storePath) {
				logInfo("No store at %s — run 'zhpatch translate' first", storePath)
				return
			}

			s := loadStoreOrDie(storePath)
			total, translated, failed := s.Stats()

			fmt.Fprintf(os.Stderr, "\n%sTranslation Store%s  %s\n", colorBlue, colorReset, storePath)
			fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
			fmt.Fprintf(os.Stderr, "  Total:      %d\n", total)
			fmt.Fprintf(os.Stderr, "  Translated: %d\n", translated)
			fmt.Fprintf(os.Stderr, "  Failed:     %d\n", failed)
			fmt.Fprintln(os.Stderr)

			if failed > 0 {
				logInfo("Failed strings (retried on next 'zhpatch translate'):")
				for _, k := range s.Failed() {
					fmt.Fprintf(os.Stderr, "  %s\n", k)
				}
				fmt.Fprintln(os.Stderr)
			}
		},
	}

	cmd.Flags().StringVarP(&storePath, "store", "o", "", "Translation store path (default translations.json)")

	return cmd
}

// ---------------------------------------------------------------------------
// import / export (PO interchange)
// ---------------------------------------------------------------------------

func newImportCmd() *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "import <file.po>",
		Short: "Merge reviewed translations from a gettext PO catalog",
		Long: `Merge translations from a PO catalog into the store.

Entries with an empty or identical msgstr are skipped. Imported entries
overwrite existing store values, so a reviewed catalog exported with
'zhpatch export' can be round-tripped through standard gettext tools.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadProjectConfig(".")
			storePath = resolveStorePath(storePath, cfg)

			imported, err := store.ImportPO(args[0])
			if err != nil {
				logError("%v", err)
				os.Exit(1)
			}
			if len(imported) == 0 {
				logWarning("No usable translations in %s", args[0])
				return
			}

			existing := loadStoreOrDie(storePath)
			merged := store.Merge(existing, imported)
			if err := merged.Save(storePath); err != nil {
				logError("%v", err)
				os.Exit(1)
			}
			logSuccess("Imported %d translations from %s into %s", len(imported), args[0], storePath)
		},
	}

	cmd.Flags().StringVarP(&storePath, "store", "o", "", "Translation store path (default translations.json)")

	return cmd
}

func newExportCmd() *cobra.Command {
	var storePath string

	cmd := &cobra.Command{
		Use:   "export <file.po>",
		Short: "Write the store as a gettext PO catalog for review",
		Long: `Export the store as a PO catalog.

Successful translations become translated entries; error placeholders
become untranslated entries so reviewers can fill them in. Re-import the
reviewed catalog with 'zhpatch import'.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadProjectConfig(".")
			storePath = resolveStorePath(storePath, cfg)

			s := loadStoreOrDie(storePath)
			if len(s) == 0 {
				logWarning("Store %s is empty, nothing to export", storePath)
				return
			}
			if err := s.ExportPO(args[0]); err != nil {
				logError("%v", err)
				os.Exit(1)
			}
			logSuccess("Exported %d entries to %s", len(s), args[0])
		},
	}

	cmd.Flags().StringVarP(&storePath, "store", "o", "", "Translation store path (default translations.json)")

	return cmd
}

// ---------------------------------------------------------------------------
// auth (API key management)
// ---------------------------------------------------------------------------

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the Google Cloud Translation API key",
		Long: `Manage the stored Google Cloud Translation API key.

The key is kept in ` + settings.FilePath() + ` with 0600 permissions.

Lookup order at translate time:
  1. --api-key flag
  2. ZHPATCH_API_KEY environment variable
  3. This credential store

Examples:
  zhpatch auth set-key             Prompt for a key and store it
  zhpatch auth status              Show the stored key (masked)
  zhpatch auth remove              Delete the stored key`,
	}

	cmd.AddCommand(
		newAuthSetKeyCmd(),
		newAuthStatusCmd(),
		newAuthRemoveCmd(),
	)

	return cmd
}

func newAuthSetKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [key]",
		Short: "Store a Google Cloud Translation API key",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				fmt.Fprintf(os.Stderr, "Enter your Google Cloud Translation API key: ")
				scanner := bufio.NewScanner(os.Stdin)
				if !scanner.Scan() {
					logError("No input received")
					os.Exit(1)
				}
				key = strings.TrimSpace(scanner.Text())
			}
			if key == "" {
				logError("Empty API key")
				os.Exit(1)
			}

			logInfo("Verifying key with a probe request...")
			if err := translate.NewGoogleAPI(key).Verify(context.Background()); err != nil {
				logError("Key verification failed: %v", err)
				os.Exit(1)
			}

			if err := settings.SetAPIKey(settings.ProviderGoogle, key); err != nil {
				logError("%v", err)
				os.Exit(1)
			}
			logSuccess("API key stored in %s", settings.FilePath())
		},
	}
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored API key (masked)",
		Run: func(cmd *cobra.Command, args []string) {
			key := settings.GetAPIKey(settings.ProviderGoogle)
			if key == "" {
				logInfo("No API key stored. Run 'zhpatch auth set-key' or set %s.", settings.EnvVar)
				return
			}
			fmt.Fprintf(os.Stderr, "  google: %s\n", settings.MaskKey(key))
		},
	}
}

func newAuthRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored API key",
		Run: func(cmd *cobra.Command, args []string) {
			if err := settings.Remove(settings.ProviderGoogle); err != nil {
				logError("%v", err)
				os.Exit(1)
			}
			logSuccess("Credentials removed")
		},
	}
}
