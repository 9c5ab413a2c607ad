package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-xml2pdf/internal/document"
	"github.com/alnah/go-xml2pdf/internal/fileutil"
	"github.com/alnah/go-xml2pdf/internal/process"
)

// DefaultTimeout bounds page load and printing when the context has no
// deadline.
const DefaultTimeout = 30 * time.Second

// Compile-time interface checks.
var (
	_ Renderer = (*Chrome)(nil)
	_ Session  = (*chromeSession)(nil)
)

// Chrome renders documents by printing an HTML rendition in headless
// Chrome. The browser is launched on the first session and reused until
// Close. Rod downloads Chromium on first run if none is installed.
type Chrome struct {
	page    Page
	timeout time.Duration

	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// NewChrome creates a Chrome backend. A non-positive timeout uses
// DefaultTimeout.
func NewChrome(page Page, timeout time.Duration) *Chrome {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Chrome{page: page, timeout: timeout}
}

// NewSession starts a new HTML document. The browser is connected lazily.
func (r *Chrome) NewSession(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}
	return &chromeSession{ctx: ctx, r: r, doc: newHTMLDoc(r.page)}, nil
}

// ensureBrowser launches and connects the browser once.
func (r *Chrome) ensureBrowser() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Pre-installed browser (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// The sandbox does not work in most CI runners and containers
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher = l
	r.browser = b
	return nil
}

// Close shuts the browser down and kills any leftover Chrome processes.
func (r *Chrome) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		if pid := r.launcher.PID(); pid > 0 {
			process.KillProcessGroup(pid)
		}
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// printFile opens a local HTML file and prints it to PDF.
func (r *Chrome) printFile(ctx context.Context, path string) ([]byte, error) {
	r.mu.Lock()
	browser := r.browser
	r.mu.Unlock()
	if browser == nil {
		return nil, ErrBrowserConnect
	}

	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{URL: "file://" + path})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(r.printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return out, nil
}

// printOptions maps the page geometry to Chrome's print settings.
func (r *Chrome) printOptions() *proto.PagePrintToPDF {
	w, h := r.page.Dimensions()
	m := r.page.margin()
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(w),
		PaperHeight:     floatPtr(h),
		MarginTop:       floatPtr(m),
		MarginBottom:    floatPtr(m),
		MarginLeft:      floatPtr(m),
		MarginRight:     floatPtr(m),
		PrintBackground: true,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// chromeSession collects elements into an HTML document.
type chromeSession struct {
	ctx  context.Context
	r    *Chrome
	doc  *htmlDoc
	done bool
}

func (s *chromeSession) AddTitle(t *document.Title) error {
	if s.done {
		return ErrSessionFinalized
	}
	s.doc.addBlock(atom.H1, t.Text, t.Style)
	return nil
}

func (s *chromeSession) AddParagraph(p *document.Paragraph) error {
	if s.done {
		return ErrSessionFinalized
	}
	s.doc.addBlock(atom.P, p.Text, p.Style)
	return nil
}

func (s *chromeSession) AddTable(t *document.Table) error {
	if s.done {
		return ErrSessionFinalized
	}
	s.doc.addTable(t)
	return nil
}

// Finalize prints the collected HTML through the browser.
func (s *chromeSession) Finalize() ([]byte, error) {
	if s.done {
		return nil, ErrSessionFinalized
	}
	s.done = true

	content, err := s.doc.String()
	if err != nil {
		return nil, err
	}

	path, cleanup, err := fileutil.WriteTempFile(content, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return s.r.printFile(s.ctx, path)
}

// Close drops the HTML document without printing.
func (s *chromeSession) Close() error {
	s.done = true
	s.doc = nil
	return nil
}
