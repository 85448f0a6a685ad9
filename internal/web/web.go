// Package web 渲染落地页并提供嵌入的静态资源
package web

import (
	"bytes"
	"embed"
	"io/fs"
	"strings"
	"time"

	"fix_syndicate_site/internal/config"
	"fix_syndicate_site/internal/web/components"
)

//go:embed static
var staticFS embed.FS

// Static 返回以 static/ 为根的文件系统，挂载在 /static
// 目录一律视为不存在，避免 http.FileServer 输出目录列表
func Static() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return filesOnlyFS{sub}, nil
}

type filesOnlyFS struct {
	fsys fs.FS
}

func (f filesOnlyFS) Open(name string) (fs.File, error) {
	file, err := f.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return file, nil
}

// RenderLanding 按站点配置渲染完整落地页
// 页面内容只依赖配置，启动时渲染一次即可
func RenderLanding(site config.SiteConfig) ([]byte, error) {
	first, rest := splitBrand(site.BusinessName)

	year := site.CopyrightYear
	if year == 0 {
		year = time.Now().Year()
	}

	page := components.Layout(
		components.PageConfig{
			Title:       site.BusinessName + " | Property Maintenance & Management",
			Description: site.BusinessName + " Property Maintenance & Management",
		},
		components.Navbar(first, rest, site.CallNumber),
		components.Hero(),
		components.Portfolio(),
		components.StatsSection(),
		components.ServicesSection(),
		components.About(site.BusinessName),
		components.Contact(components.ContactDetails{
			Address: site.Address,
			Phone:   site.Phone,
			Email:   site.Email,
		}),
		components.PageFooter(first, rest, year),
		components.ScrollTopButton(),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// splitBrand "Fix Syndicate" -> ("Fix", "Syndicate")
func splitBrand(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = config.Default().SiteConfig.BusinessName
	}
	first, rest, _ := strings.Cut(name, " ")
	return first, rest
}
