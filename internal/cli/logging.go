package cli

import (
	"io"
	"os"

	"github.com/ashleyjackson/provbuild/internal/branding"
	"github.com/inconshreveable/log15"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// newLogger returns a logfmt logger on w when verbose is set, and a
// discarding one otherwise.
func newLogger(w io.Writer, verbose bool) log15.Logger {
	l := log15.New("cmd", branding.CLIName())
	if !verbose {
		l.SetHandler(log15.DiscardHandler())
		return l
	}
	l.SetHandler(log15.LvlFilterHandler(log15.LvlDebug, log15.StreamHandler(w, log15.LogfmtFormat())))
	return l
}

// logArtifact records the size of a freshly built artifact.
func logArtifact(log log15.Logger, path string) {
	info, err := os.Stat(path)
	if err != nil {
		log.Warn("artifact missing after build", "path", path, "err", err)
		return
	}
	log.Debug("artifact written", "path", path, "size", printer.Sprintf("%d bytes", info.Size()))
}
