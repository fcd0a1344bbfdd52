package main

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/djherbis/atime"
	humanize "github.com/dustin/go-humanize"
	"github.com/matryer/try"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/csstidy"
	"github.com/tdewolff/csstidy/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Version is the current csstidy version.
var Version = "built from source"

var (
	hidden    bool
	recursive bool
	quiet     bool
	verbose   int
	version   bool
	watch     bool
	preserve  bool
	matches   []string
	options   csstidy.Config

	zlog   = zap.NewNop()
	logger = zlog.Sugar()
)

// Task is a tidy task from a source file to a destination file, empty names are stdin and stdout.
type Task struct {
	root string
	src  string
	dst  string
}

// NewTask returns a new Task. Destinations that are directories receive the input path relative to root.
func NewTask(root, input, output string) (Task, error) {
	if len(output) != 0 && (output == "." || output[len(output)-1] == os.PathSeparator) {
		rel, err := filepath.Rel(root, input)
		if err != nil {
			return Task{}, err
		}
		output = filepath.Join(output, rel)
	}
	return Task{root, input, output}, nil
}

func main() {
	// os.Exit doesn't execute pending defer calls, this is fixed by encapsulating run()
	os.Exit(run())
}

func run() int {
	var inputs []string
	var output string
	var configPath string

	options = csstidy.DefaultConfig()

	f := argp.New("csstidy")
	f.AddRest(&inputs, "inputs", "Input files or directories, leave blank to use stdin")
	f.AddOpt(&output, "o", "output", nil, "Output file or directory, leave blank to use stdout")
	f.AddOpt(&configPath, "", "config", ".csstidy.yaml", "Configuration file, ignored when missing")
	f.AddOpt(&matches, "", "match", []string{"**/*.css"}, "Filename matching patterns for directories, supports **")
	f.AddOpt(&recursive, "r", "recursive", false, "Recursively tidy directories")
	f.AddOpt(&hidden, "a", "all", false, "Tidy all files, including hidden files and files in hidden directories")
	f.AddOpt(&quiet, "q", "quiet", false, "Quiet mode to suppress all output")
	f.AddOpt(argp.Count{I: &verbose}, "v", "verbose", nil, "Verbose mode, set twice for more verbosity")
	f.AddOpt(&watch, "w", "watch", false, "Watch files and tidy upon changes")
	f.AddOpt(&preserve, "p", "preserve", false, "Preserve mode and timestamps of input files")
	f.AddOpt(&version, "", "version", false, "Version")

	f.AddOpt(&options.PreserveCSS, "", "preserve-css", options.PreserveCSS, "Disable all optimisations")
	f.AddOpt(&options.MergeSelectors, "", "merge-selectors", options.MergeSelectors, "Merge rules with identical declarations, 0 or 1")
	f.AddOpt(&options.DiscardInvalidSelectors, "", "discard-invalid-selectors", options.DiscardInvalidSelectors, "Remove rules with invalid selectors")
	f.AddOpt(&options.OptimiseShorthands, "", "optimise-shorthands", options.OptimiseShorthands, "Shorthand optimisation, 0 is off, 1 is box properties and 2 includes background")
	f.AddOpt(&options.CompressFontWeight, "", "compress-font-weight", options.CompressFontWeight, "Replace bold and normal by 700 and 400")
	f.AddOpt(&options.CompressColors, "", "compress-colors", options.CompressColors, "Compress colors")
	f.Parse()

	if version {
		if !quiet {
			fmt.Printf("csstidy %s\n", Version)
		}
		return 0
	}

	zlog = newLogger(quiet, verbose)
	logger = zlog.Sugar()
	defer zlog.Sync()

	var err error
	if options, err = loadConfig(configPath, setFlags(f, options)); err != nil {
		logger.Error(err)
		return 1
	}
	for _, pattern := range matches {
		if !doublestar.ValidatePattern(pattern) {
			logger.Errorf("invalid match pattern %q", pattern)
			return 1
		}
	}

	if len(inputs) == 1 && inputs[0] == "-" {
		inputs = inputs[:0] // stdin
	} else if output == "-" {
		output = "" // stdout
	}
	useStdin := len(inputs) == 0

	if (useStdin || output == "") && watch {
		logger.Error("--watch doesn't work with stdin and stdout, specify input and output")
		return 1
	} else if useStdin && recursive {
		logger.Error("--recursive doesn't work with stdin, specify input")
		return 1
	} else if output == "" && recursive {
		logger.Error("--recursive doesn't work with stdout, specify output")
		return 1
	} else if preserve && (useStdin || output == "") {
		logger.Error("--preserve cannot be used together with stdin or stdout")
		return 1
	}

	for i, input := range inputs {
		if input == "-" {
			logger.Error("cannot mix files and stdin as input")
			return 1
		}
		inputs[i] = filepath.Clean(input)
		if input[len(input)-1] == os.PathSeparator {
			inputs[i] += string(os.PathSeparator)
		}
	}

	// set output file or directory, empty means stdout
	dirDst := false
	if output != "" {
		dirDst = IsDir(output)
		if !dirDst {
			if 1 < len(inputs) {
				logger.Errorf("stat %v: no such file or directory", output)
				return 1
			} else if len(inputs) == 1 {
				if info, err := os.Lstat(inputs[0]); err == nil && info.Mode().IsDir() && info.Mode()&os.ModeSymlink == 0 {
					dirDst = true
				}
			}
		}

		output = filepath.Clean(output)
		if dirDst {
			output += string(os.PathSeparator)
		}
	} else if 1 < len(inputs) {
		logger.Error("must specify an output directory for multiple input files")
		return 1
	}

	var tasks []Task
	var roots []string
	if useStdin {
		tasks = append(tasks, Task{dst: output})
		roots = append(roots, "")
	} else if tasks, roots, err = createTasks(NewFS(), inputs, output); err != nil {
		logger.Error(err)
		return 1
	}

	if dirDst {
		if err := os.MkdirAll(output, 0777); err != nil {
			logger.Error(err)
			return 1
		}
	}

	////////////////

	fails := 0
	start := time.Now()
	if !watch && (len(tasks) == 1 || 0 < verbose) {
		for _, task := range tasks {
			if ok := tidy(task); !ok {
				fails++
			}
		}
	} else {
		numWorkers := runtime.NumCPU()
		if 0 < verbose {
			numWorkers = 1
		} else if numWorkers < 4 {
			numWorkers = 4
		}

		chanTasks := make(chan Task, 20)
		chanFails := make(chan int, numWorkers)
		for n := 0; n < numWorkers; n++ {
			go tidyWorker(chanTasks, chanFails)
		}

		if !watch {
			for _, task := range tasks {
				chanTasks <- task
			}
		} else {
			watcher, err := NewWatcher(recursive, logger)
			if err != nil {
				logger.Error(err)
				return 1
			}
			defer watcher.Close()

			explicit := map[string]bool{}
			for _, filename := range inputs {
				explicit[filepath.Clean(filename)] = true
				if err := watcher.AddPath(filename); err != nil {
					logger.Error(err)
					return 1
				}
			}
			changes := watcher.Run()

			for _, task := range tasks {
				watcher.IgnoreNext(task.dst)
				chanTasks <- task
			}

			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt)
			for changes != nil {
				select {
				case <-c:
					watcher.Close()
				case file, ok := <-changes:
					if !ok {
						changes = nil
						break
					}
					file = filepath.Clean(file)
					if !explicit[file] && !fileMatches(file) {
						break
					}

					// find longest common path among roots
					root := ""
					for _, path := range roots {
						pathRel, err1 := filepath.Rel(path, file)
						rootRel, err2 := filepath.Rel(root, file)
						if err2 != nil || err1 == nil && len(pathRel) < len(rootRel) {
							root = path
						}
					}

					task, err := NewTask(root, file, output)
					if err != nil {
						logger.Error(err)
						break
					}
					watcher.IgnoreNext(task.dst) // skip change on output
					chanTasks <- task
				}
			}
		}

		close(chanTasks)
		for n := 0; n < numWorkers; n++ {
			fails += <-chanFails
		}
	}

	if !watch {
		logger.Infof("finished in %v", time.Since(start))
	}
	if 0 < fails {
		return 1
	}
	return 0
}

func tidyWorker(chanTasks <-chan Task, chanFails chan<- int) {
	fails := 0
	for task := range chanTasks {
		if ok := tidy(task); !ok {
			fails++
		}
	}
	chanFails <- fails
}

// fileMatches returns true if filename matches any of the match patterns.
func fileMatches(filename string) bool {
	if len(matches) == 0 {
		return true
	}
	filename = filepath.ToSlash(filename)
	for _, pattern := range matches {
		if ok, _ := doublestar.Match(pattern, filename); ok {
			return true
		} else if ok, _ := doublestar.Match(pattern, filepath.Base(filename)); ok && !strings.Contains(pattern, "/") {
			return true
		}
	}
	return false
}

func createTasks(fsys fs.FS, inputs []string, output string) ([]Task, []string, error) {
	tasks := []Task{}
	roots := []string{}
	for _, input := range inputs {
		root := filepath.Clean(filepath.Dir(input))
		input = filepath.Clean(input)

		info, err := fs.Stat(fsys, input)
		if err != nil {
			return nil, nil, err
		}

		if info.Mode().IsRegular() {
			// explicitly given files are not filtered
			task, err := NewTask(root, input, output)
			if err != nil {
				return nil, nil, err
			}
			tasks = append(tasks, task)
		} else if info.Mode().IsDir() {
			if !recursive {
				logger.Warnf("--recursive not specified, omitting directory %s", input)
				continue
			}

			err := fs.WalkDir(fsys, input, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				} else if d.Name() == "." || d.Name() == ".." {
					return nil
				} else if d.Name() == "" || !hidden && d.Name()[0] == '.' {
					if d.IsDir() {
						return fs.SkipDir
					}
					return nil
				}

				if d.Type().IsRegular() && fileMatches(path) {
					task, err := NewTask(root, path, output)
					if err != nil {
						return err
					}
					tasks = append(tasks, task)
				}
				return nil
			})
			if err != nil {
				return nil, nil, err
			}
			roots = append(roots, root)
		} else {
			return nil, nil, fmt.Errorf("not a file or directory %s", input)
		}
	}
	return tasks, roots, nil
}

func tidy(t Task) bool {
	srcName := t.src
	if srcName == "" {
		srcName = "stdin"
	}
	dstName := t.dst
	if dstName == "" {
		dstName = "stdout"
	}

	// rename original when overwriting
	src := t.src
	if t.src != "" && t.dst != "" {
		if sameFile, _ := SameFile(t.src, t.dst); sameFile {
			src = t.src + ".bak"
			err := try.Do(func(attempt int) (bool, error) {
				ferr := os.Rename(t.dst, src)
				return attempt < 5, ferr
			})
			if err != nil {
				logger.Error(err)
				return false
			}
		}
	}

	fr, err := openInputFile(src)
	if err != nil {
		logger.Error(err)
		return false
	}
	b, err := io.ReadAll(fr)
	if err = multierr.Append(err, fr.Close()); err != nil {
		logger.Errorf("cannot tidy %s: %v", srcName, err)
		return false
	}

	w := bytes.NewBuffer(make([]byte, 0, len(b)))
	o := css.New(options, csstidy.NewZapLogger(zlog.With(zap.String("file", srcName))))

	success := true
	startTime := time.Now()
	if err := o.Tidy(w, bytes.NewReader(b)); err != nil {
		w = bytes.NewBuffer(b) // copy original
		logger.Errorf("cannot tidy %s: %v", srcName, err)
		success = false
	}
	dur := time.Since(startTime)
	rLen, wLen := len(b), w.Len()

	fw, err := openOutputFile(t.dst)
	if err == nil {
		_, err = io.Copy(fw, w)
		if cerr := fw.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close %s: %w", dstName, cerr))
		}
	}

	// remove original that was renamed, or restore it on failure
	if src != t.src {
		if err == nil {
			err = os.Remove(src)
		} else if rerr := os.Rename(src, t.dst); rerr != nil {
			err = multierr.Append(err, rerr)
		}
	}
	if err != nil {
		logger.Error(err)
		return false
	}

	if !quiet {
		speed := "Inf MB"
		if 0 < dur {
			speed = humanize.Bytes(uint64(float64(rLen) / dur.Seconds()))
		}
		ratio := 1.0
		if 0 < rLen {
			ratio = float64(wLen) / float64(rLen)
		}

		stats := fmt.Sprintf("(%9v, %6v, %6v, %5.1f%%, %6v/s)", dur, humanize.Bytes(uint64(rLen)), humanize.Bytes(uint64(wLen)), ratio*100, speed)
		if srcName != dstName {
			fmt.Fprintln(os.Stderr, stats, "-", srcName, "to", dstName)
		} else {
			fmt.Fprintln(os.Stderr, stats, "-", srcName)
		}
	}

	if preserve {
		preserveAttributes(t.src, t.root, t.dst)
	}
	return success
}

// preserveAttributes copies mode and timestamps of src and its parent directories up to root to dst.
func preserveAttributes(src, root, dst string) {
	if src == "" || dst == "" {
		return
	}

	// make sure we only set attributes on directories and files inside the root destination
	var err error
	src, err = filepath.Rel(root, src)
	if err != nil {
		logger.Errorf("src is not part of root path: src=%s root=%s", src, root)
		return
	}

	for {
		srcInfo, err := os.Stat(filepath.Join(root, src))
		if err != nil {
			logger.Warn(err)
			return
		}
		if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
			logger.Warn(err)
		}
		if err := os.Chtimes(dst, atime.Get(srcInfo), srcInfo.ModTime()); err != nil {
			logger.Warn(err)
		}

		src = filepath.Dir(src)
		dst = filepath.Dir(dst)
		if src == "." {
			// go up to but excluding the root path
			return
		}
	}
}
