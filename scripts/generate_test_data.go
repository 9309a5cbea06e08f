package main

import (
	"fmt"
	"log"

	"github.com/folio/internal/config"
	"github.com/folio/internal/db"
	"github.com/folio/internal/service"
)

// 测试数据生成器
func main() {
	// 初始化数据库
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成测试数据...")

	createTestUser()
	createTestPages()
	createTestPosts()
	createTestMedia()

	fmt.Println("测试数据生成完成！")
	fmt.Println("用户: admin (密码: admin123)")
	fmt.Println("页面: home（含画廊抽屉）、about、contact")
	fmt.Println("文章: 3篇测试文章")
}

// 创建测试用户
func createTestUser() {
	created, err := db.EnsureUser(db.DB, "admin", "admin123")
	if err != nil {
		log.Fatal("创建用户失败:", err)
	}
	if !created {
		fmt.Println("用户已存在，跳过创建")
		return
	}
	fmt.Println("✅ 测试用户创建完成")
}

var testPages = []service.PageInput{
	{Slug: "home", Title: "Home", Summary: "作品集首页", GalleryDrawer: true},
	{Slug: "about", Title: "About", Content: "## 关于我\n摄影与设计爱好者。"},
	{Slug: "contact", Title: "Contact"},
}

func createTestPages() {
	pages := service.NewPageService(db.DB)
	for _, input := range testPages {
		if _, err := pages.GetBySlug(input.Slug); err == nil {
			fmt.Printf("页面 %s 已存在，跳过创建\n", input.Slug)
			continue
		}
		if _, err := pages.Save(input); err != nil {
			log.Printf("创建页面 %s 失败: %v", input.Slug, err)
		}
	}
	fmt.Println("✅ 测试页面创建完成")
}

var testPosts = []service.PostInput{
	{Title: "Hello World", Summary: "第一篇文章", Published: true},
	{Title: "夏日旅行札记", Content: "海边的日落和街角的咖啡店。", Published: true},
	{Title: "草稿：新系列预告"},
}

func createTestPosts() {
	var count int64
	db.DB.Model(&db.Post{}).Count(&count)
	if count > 0 {
		fmt.Println("文章已存在，跳过创建")
		return
	}

	posts := service.NewPostService(db.DB)
	for _, input := range testPosts {
		if _, err := posts.Create(input); err != nil {
			log.Printf("创建文章 %s 失败: %v", input.Title, err)
		}
	}
	fmt.Println("✅ 测试文章创建完成")
}

// 媒体记录只写入元数据，指向外部示例图片
var testMedia = []struct {
	input  service.MediaInput
	target string
}{
	{input: service.MediaInput{URL: "https://picsum.photos/id/10/1600/900", Filename: "sunset-hero.jpg"}, target: "page:home"},
	{input: service.MediaInput{URL: "https://picsum.photos/id/20/1200/800", Filename: "drawer-preview.jpg"}, target: "home-gallery-0"},
	{input: service.MediaInput{URL: "https://picsum.photos/id/30/1200/800", Filename: "drawer-2.jpg"}, target: "home-gallery-1"},
	{input: service.MediaInput{URL: "https://picsum.photos/id/40/800/800", Filename: "portrait.png"}, target: "page:about"},
	{input: service.MediaInput{URL: "https://picsum.photos/id/50/1200/800", Filename: "beach.jpg"}, target: "post:1"},
	{input: service.MediaInput{URL: "https://picsum.photos/id/60/1200/800", Filename: "unsorted.jpg"}, target: service.TargetUnassigned},
}

func createTestMedia() {
	var count int64
	db.DB.Model(&db.MediaAsset{}).Count(&count)
	if count > 0 {
		fmt.Println("媒体已存在，跳过创建")
		return
	}

	store := service.NewMediaService(db.DB)
	owners := service.NewContentOwners(service.NewPageService(db.DB), service.NewPostService(db.DB))
	controller := service.NewAssignmentController(store, owners, nil)

	for _, seed := range testMedia {
		item, err := store.Create(seed.input)
		if err != nil {
			log.Printf("创建媒体 %s 失败: %v", seed.input.Filename, err)
			continue
		}
		result, err := controller.Assign(item.ID, seed.target)
		if err != nil {
			log.Printf("关联媒体 %s 失败: %v", seed.input.Filename, err)
			continue
		}
		if result.Outcome == service.OutcomeIgnored {
			log.Printf("媒体 %s 的目标 %s 无法解析，保持未关联", seed.input.Filename, seed.target)
		}
	}
	fmt.Println("✅ 测试媒体创建完成")
}
