package compile

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Names of the two temporary files marshalled across the compiler
// boundary during a clause insertion. The core assumes exclusive
// ownership of both paths for the duration of an edit; concurrent edits
// sharing a directory must be serialized by the caller.
const (
	IntermediateCNF = "intermediate.cnf"
	IntermediateNNF = "intermediate.nnf"
)

// ErrCompilerExit indicates the compiler subprocess terminated with a
// non-zero status or produced no output file.
var ErrCompilerExit = errors.New("compile: compiler failed")

// Func synchronously compiles the DIMACS CNF at cnfPath into a d-DNNF
// file at nnfPath. Implementations must either produce a readable file
// at nnfPath or return an error; partial output on error is tolerated
// because callers remove both paths on every exit.
type Func func(cnfPath, nnfPath string) error

// TempPaths returns the well-known intermediate CNF/NNF paths inside dir.
func TempPaths(dir string) (cnfPath, nnfPath string) {
	return filepath.Join(dir, IntermediateCNF), filepath.Join(dir, IntermediateNNF)
}

// Option configures a subprocess-backed compiler.
type Option func(*options)

type options struct {
	log  logrus.FieldLogger
	args []string
}

// WithLogger routes subprocess diagnostics through log instead of the
// standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithExtraArgs appends additional arguments to the compiler invocation.
func WithExtraArgs(args ...string) Option {
	return func(o *options) { o.args = append(o.args, args...) }
}

// D4 returns a Func that invokes the d4 compiler binary as a child
// process:
//
//	d4 -i <cnf> -m ddnnf-compiler --dump-ddnnf <nnf> [extra args]
//
// Stdout and stderr are captured and logged at debug level; a non-zero
// exit status or a missing output file is reported as ErrCompilerExit.
func D4(binary string, opts ...Option) Func {
	o := options{log: logrus.StandardLogger()}
	for _, fn := range opts {
		fn(&o)
	}

	return func(cnfPath, nnfPath string) error {
		args := []string{"-i", cnfPath, "-m", "ddnnf-compiler", "--dump-ddnnf", nnfPath}
		args = append(args, o.args...)

		var out bytes.Buffer
		cmd := exec.Command(binary, args...)
		cmd.Stdout = &out
		cmd.Stderr = &out

		log := o.log.WithFields(logrus.Fields{
			"compiler": binary,
			"cnf":      cnfPath,
			"nnf":      nnfPath,
		})
		log.Debug("invoking external d-DNNF compiler")

		if err := cmd.Run(); err != nil {
			log.WithField("output", out.String()).Debug("compiler run failed")
			return errors.Wrapf(ErrCompilerExit, "running %s: %v", binary, err)
		}
		log.WithField("output", out.String()).Debug("compiler finished")

		if _, err := os.Stat(nnfPath); err != nil {
			return errors.Wrapf(ErrCompilerExit, "%s produced no output at %s", binary, nnfPath)
		}
		return nil
	}
}
