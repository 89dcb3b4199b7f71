// Package pdf prints the proposal document to PDF through headless Chromium.
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type ChromiumRenderer struct {
	chromePath string
}

func NewChromiumRenderer() *ChromiumRenderer {
	return &ChromiumRenderer{
		chromePath: detectChromePath(),
	}
}

// Render converts the proposal markdown to HTML and prints it to an A4 PDF.
func (r *ChromiumRenderer) Render(ctx context.Context, markdown string) ([]byte, error) {
	htmlDoc, err := buildHTML(markdown)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return pdf, nil
}

func buildHTML(markdown string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	return "<!doctype html><html><head><meta charset='utf-8'><title>Benefit Proposal</title>" +
		"<style>" + proposalCSS + "</style></head><body>" +
		"<div class='proposal'>" + content.String() + "</div>" +
		"</body></html>", nil
}

const proposalCSS = `
html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;}
body{font-family:'Malgun Gothic','NanumGothic',sans-serif;color:#1c1917;background:#fff;padding:0.6rem;font-size:11pt;line-height:1.5;}
.proposal{max-width:1000px;margin:0 auto;}
h1{font-size:20pt;text-align:center;color:#0f3d91;margin-bottom:1.2rem;}
h2{font-size:13pt;color:#0f3d91;margin-top:1.4rem;border-bottom:2px solid #e8eef9;padding-bottom:0.25rem;}
table{width:100%;border-collapse:collapse;font-size:10pt;margin:0.6rem 0;}
th,td{border:1px solid #d0d4da;padding:0.35rem 0.45rem;vertical-align:top;}
thead th{background:#e8eef9;color:#0f3d91;font-weight:700;text-align:center;}
td:last-child{text-align:right;}
@media print{ @page{size:A4;margin:12mm;} body{padding:0;} }
`

func detectChromePath() string {
	if path := os.Getenv("CHROME_PATH"); path != "" {
		return path
	}
	candidates := []string{
		"chromium",
		"chromium-browser",
		"google-chrome",
		"google-chrome-stable",
	}
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
