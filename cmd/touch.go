package cmd

import (
	"fmt"
	"time"

	"gotouch/internal/db"
	"gotouch/internal/logger"
	"gotouch/internal/repository"
	"gotouch/internal/touch"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type touchFlags struct {
	onlyAtime bool
	onlyMtime bool
	noCreate  bool
	force     bool
	history   bool
	reference string
	stamp     string
	timeWord  string
}

var touchOpts = &touchFlags{}

func runTouch(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	if err := touch.ValidTimeWord(touchOpts.timeWord); err != nil {
		return err
	}

	fs := afero.NewOsFs()

	req := touch.Request{
		Reference: touchOpts.reference,
		Stamp:     touchOpts.stamp,
		HasStamp:  cmd.Flags().Changed("stamp"),
	}

	pair, source := touch.ResolvePair(req, time.Now(), touch.NewFSReader(fs))
	if req.Reference != "" && source != touch.SourceReference {
		logger.Log.Warn("reference file unusable, falling back",
			zap.String("reference", req.Reference),
			zap.Stringer("source", source))
	}

	plan := touch.Plan{
		Pair:     pair,
		Source:   source,
		Mode:     touch.ResolveUpdateMode(touchOpts.onlyAtime, touchOpts.onlyMtime, touchOpts.timeWord),
		NoCreate: touchOpts.noCreate || cfg.NoCreate,
	}

	logger.Log.Debug("resolved timestamps",
		zap.Stringer("source", plan.Source),
		zap.Stringer("mode", plan.Mode),
		zap.Time("atime", plan.Pair.Access),
		zap.Time("mtime", plan.Pair.Modification))

	var repo *repository.HistoryRepository
	if touchOpts.history || cfg.History {
		if err := db.Init(cfg.HistoryDB); err != nil {
			logger.Log.Warn("history disabled", zap.Error(err))
		} else {
			repo = repository.NewHistoryRepository()
		}
	}

	results := touch.NewToucher(fs).TouchAll(plan, args)

	var failed int
	for _, r := range results {
		if repo != nil {
			if err := repo.Save(plan, r); err != nil {
				logger.Log.Warn("failed to save history",
					zap.String("path", r.Path),
					zap.Error(err))
			}
		}

		if r.Err != nil {
			failed++
			logger.Log.Error("cannot touch",
				zap.String("path", r.Path),
				zap.Error(r.Err))
			continue
		}

		logger.Log.Debug("file done",
			zap.String("path", r.Path),
			zap.String("action", string(r.Action)))
	}

	if failed > 0 {
		return fmt.Errorf("failed to touch %d of %d files", failed, len(results))
	}

	return nil
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&touchOpts.onlyAtime, "only-atime", "a", false, "change only the access time")
	flags.BoolVarP(&touchOpts.onlyMtime, "only-mtime", "m", false, "change only the modification time")
	flags.BoolVarP(&touchOpts.noCreate, "no-create", "c", false, "do not create any files")
	flags.BoolVarP(&touchOpts.force, "force", "f", false, "(ignored)")
	flags.StringVarP(&touchOpts.reference, "reference", "r", "", "use this file's times instead of current time")
	flags.StringVarP(&touchOpts.stamp, "stamp", "t", "", "use [[CC]YY]MMDDhhmm[.ss] instead of current time")
	flags.StringVar(&touchOpts.timeWord, "time", "", "change the specified time: access, atime, use, modify, mtime")
	flags.BoolVar(&touchOpts.history, "history", false, "record results in the history database")
}
