package navigation

import "textile-erp-nav/internal/access"

const DefaultAppName = "Tekstil ERP"

var defaultSections = []Section{
	{
		Key: "dashboard", Title: "Ana Sayfa", Icon: "LayoutDashboard", DefaultOpen: true,
		Items: []Item{
			{Href: "/dashboard", Icon: "Home", Label: "Genel Bakış"},
			{Href: "/dashboard/reports", Icon: "BarChart3", Label: "Raporlar"},
		},
	},
	{
		Key: "sales", Title: "Satış", Icon: "ShoppingCart",
		Requires: []access.Capability{access.Sales},
		Items: []Item{
			{Href: "/sales/orders", Icon: "ClipboardList", Label: "Siparişler"},
			{Href: "/sales/customers", Icon: "Users", Label: "Müşteriler"},
			{Href: "/sales/price-lists", Icon: "Tags", Label: "Fiyat Listeleri"},
		},
	},
	{
		Key: "crm", Title: "CRM", Icon: "Handshake",
		Requires: []access.Capability{access.Sales},
		Items: []Item{
			{Href: "/crm/interactions", Icon: "MessageSquare", Label: "Müşteri Görüşmeleri"},
			{Href: "/crm/opportunities", Icon: "Target", Label: "Fırsatlar"},
		},
	},
	{
		Key: "planning", Title: "Üretim Planlama", Icon: "CalendarRange",
		Requires: []access.Capability{access.Planning, access.Production},
		Items: []Item{
			{Href: "/planning/schedule", Icon: "CalendarDays", Label: "Termin Planı"},
			{Href: "/planning/capacity", Icon: "Gauge", Label: "Kapasite"},
			{Href: "/planning/optimization", Icon: "Sparkles", Label: "Optimizasyon"},
		},
	},
	{
		Key: "production", Title: "Üretim", Icon: "Factory",
		Requires: []access.Capability{access.Production},
		Items: []Item{
			{Href: "/production/work-orders", Icon: "FileText", Label: "İş Emirleri"},
			{Href: "/production/dye-recipes", Icon: "Droplets", Label: "Boya Reçeteleri"},
			{Href: "/production/machines", Icon: "Cog", Label: "Makineler"},
		},
	},
	{
		Key: "production-tracking", Title: "Üretim Takip", Icon: "Activity",
		Requires: []access.Capability{access.Production, access.Weaving, access.Planning},
		Items: []Item{
			{Href: "/production-tracking/refakat-cards", Icon: "CreditCard", Label: "Refakat Kartları"},
			{Href: "/production-tracking/stages", Icon: "ListChecks", Label: "Aşama Takibi"},
		},
	},
	{
		Key: "weaving", Title: "Dokuma", Icon: "Grid3x3",
		Requires: []access.Capability{access.Weaving},
		Items: []Item{
			{Href: "/weaving/work-orders", Icon: "FileText", Label: "Dokuma İş Emirleri"},
			{Href: "/weaving/looms", Icon: "Cpu", Label: "Tezgahlar"},
			{Href: "/weaving/efficiency", Icon: "TrendingUp", Label: "Verimlilik"},
		},
	},
	{
		Key: "warp-preparation", Title: "Çözgü Hazırlık", Icon: "Layers",
		Requires: []access.Capability{access.Weaving, access.Production},
		Items: []Item{
			{Href: "/warp-preparation/orders", Icon: "FileText", Label: "Çözgü Emirleri"},
			{Href: "/warp-preparation/beams", Icon: "Cylinder", Label: "Levent Takibi"},
		},
	},
	{
		Key: "quality", Title: "Kalite", Icon: "BadgeCheck",
		Requires: []access.Capability{access.Quality},
		Items: []Item{
			{Href: "/quality/inspections", Icon: "ClipboardCheck", Label: "Kalite Kontrolleri"},
			{Href: "/quality/defects", Icon: "AlertTriangle", Label: "Hata Kayıtları"},
		},
	},
	{
		Key: "raw-quality", Title: "Ham Kalite", Icon: "ScanSearch",
		Requires: []access.Capability{access.RawQuality, access.Quality, access.Production},
		Items: []Item{
			{Href: "/raw-quality/inspections", Icon: "Search", Label: "Ham Kumaş Kontrol"},
			{Href: "/raw-quality/reports", Icon: "FileBarChart", Label: "Ham Kalite Raporları"},
		},
	},
	{
		Key: "laboratory", Title: "Laboratuvar", Icon: "FlaskConical",
		Requires: []access.Capability{access.Laboratory, access.Quality, access.Production},
		Items: []Item{
			{Href: "/laboratory/tests", Icon: "TestTube", Label: "Testler"},
			{Href: "/laboratory/dye-trials", Icon: "Pipette", Label: "Boya Denemeleri"},
		},
	},
	{
		Key: "kartela", Title: "Kartela", Icon: "Palette",
		Requires: []access.Capability{access.Kartela, access.Sales, access.ProductDev},
		Items: []Item{
			{Href: "/kartela/cards", Icon: "SwatchBook", Label: "Kartelalar"},
			{Href: "/kartela/requests", Icon: "Inbox", Label: "Kartela Talepleri"},
		},
	},
	{
		Key: "product-development", Title: "Ürün Geliştirme", Icon: "Lightbulb",
		Requires: []access.Capability{access.ProductDev, access.Quality},
		Items: []Item{
			{Href: "/product-development/designs", Icon: "PenTool", Label: "Desenler"},
			{Href: "/product-development/fabrics", Icon: "Shirt", Label: "Kumaş Tasarımları"},
		},
	},
	{
		Key: "samples", Title: "Numune", Icon: "Scissors",
		Requires: []access.Capability{access.Samples, access.Sales, access.ProductDev},
		Items: []Item{
			{Href: "/samples/requests", Icon: "Send", Label: "Numune Talepleri"},
			{Href: "/samples/shipments", Icon: "PackageCheck", Label: "Numune Gönderimleri"},
		},
	},
	{
		Key: "yarn-spinning", Title: "İplik Büküm", Icon: "RefreshCw",
		Requires: []access.Capability{access.YarnSpinning},
		Items: []Item{
			{Href: "/yarn-spinning/orders", Icon: "FileText", Label: "Büküm Emirleri"},
			{Href: "/yarn-spinning/machines", Icon: "Cog", Label: "Büküm Makineleri"},
		},
	},
	{
		Key: "yarn-warehouse", Title: "İplik Depo", Icon: "Package",
		Requires: []access.Capability{access.YarnWarehouse},
		Items: []Item{
			{Href: "/yarn-warehouse/stock", Icon: "Boxes", Label: "İplik Stoku"},
			{Href: "/yarn-warehouse/movements", Icon: "ArrowLeftRight", Label: "İplik Hareketleri"},
		},
	},
	{
		Key: "inventory", Title: "Depo ve Stok", Icon: "Warehouse",
		Requires: []access.Capability{access.Inventory},
		Items: []Item{
			{Href: "/inventory/stock", Icon: "Boxes", Label: "Stok Durumu"},
			{Href: "/inventory/movements", Icon: "ArrowLeftRight", Label: "Stok Hareketleri"},
			{Href: "/inventory/reports", Icon: "FileBarChart", Label: "Depo Raporları"},
		},
	},
	{
		Key: "fabric-warehouse", Title: "Kumaş Depo", Icon: "Container",
		Requires: []access.Capability{access.Warehouse, access.Inventory},
		Items: []Item{
			{Href: "/fabric-warehouse/stock", Icon: "Boxes", Label: "Kumaş Stoku"},
			{Href: "/fabric-warehouse/reports", Icon: "FileBarChart", Label: "Kumaş Depo Raporları"},
		},
	},
	{
		Key: "shipment", Title: "Sevkiyat", Icon: "Truck",
		Requires: []access.Capability{access.Shipment},
		Items: []Item{
			{Href: "/shipment/orders", Icon: "ClipboardList", Label: "Sevk Emirleri"},
			{Href: "/shipment/waybills", Icon: "Receipt", Label: "İrsaliyeler"},
		},
	},
	{
		Key: "maintenance", Title: "Bakım", Icon: "Wrench",
		Requires: []access.Capability{access.MaintenanceStaff},
		Items: []Item{
			{Href: "/maintenance/requests", Icon: "Inbox", Label: "Arıza Talepleri"},
			{Href: "/maintenance/electric", Icon: "Zap", Label: "Elektrik Bakım"},
			{Href: "/maintenance/mechanical", Icon: "Hammer", Label: "Mekanik Bakım"},
		},
	},
	{
		Key: "it", Title: "Bilgi İşlem", Icon: "Monitor",
		Requires: []access.Capability{access.IT},
		Items: []Item{
			{Href: "/it/assets", Icon: "HardDrive", Label: "Donanım Envanteri"},
			{Href: "/it/tickets", Icon: "LifeBuoy", Label: "Destek Talepleri"},
		},
	},
	{
		Key: "admin", Title: "Yönetim", Icon: "Settings",
		Requires: []access.Capability{access.Admin},
		Items: []Item{
			{Href: "/admin/users", Icon: "Users", Label: "Kullanıcılar"},
			{Href: "/admin/roles", Icon: "Shield", Label: "Roller"},
			{Href: "/admin/departments", Icon: "Building2", Label: "Departmanlar"},
			{Href: "/admin/permissions", Icon: "KeyRound", Label: "Yetkiler"},
		},
	},
}

// /production-tracking must stay ahead of /production.
var defaultRoutes = []Route{
	{Prefix: "/dashboard", Key: "dashboard"},
	{Prefix: "/sales", Key: "sales"},
	{Prefix: "/crm", Key: "crm"},
	{Prefix: "/planning", Key: "planning"},
	{Prefix: "/production-tracking", Key: "production-tracking"},
	{Prefix: "/production", Key: "production"},
	{Prefix: "/weaving", Key: "weaving"},
	{Prefix: "/warp-preparation", Key: "warp-preparation"},
	{Prefix: "/quality", Key: "quality"},
	{Prefix: "/raw-quality", Key: "raw-quality"},
	{Prefix: "/laboratory", Key: "laboratory"},
	{Prefix: "/kartela", Key: "kartela"},
	{Prefix: "/product-development", Key: "product-development"},
	{Prefix: "/samples", Key: "samples"},
	{Prefix: "/yarn-spinning", Key: "yarn-spinning"},
	{Prefix: "/yarn-warehouse", Key: "yarn-warehouse"},
	{Prefix: "/inventory", Key: "inventory"},
	{Prefix: "/fabric-warehouse", Key: "fabric-warehouse"},
	{Prefix: "/shipment", Key: "shipment"},
	{Prefix: "/maintenance", Key: "maintenance"},
	{Prefix: "/it/", Key: "it"},
	{Prefix: "/admin", Key: "admin"},
}

// Default returns the built-in ERP catalog. An empty appName falls back to
// DefaultAppName.
func Default(appName string) *Catalog {
	if appName == "" {
		appName = DefaultAppName
	}
	c, err := NewCatalog(appName, defaultSections, defaultRoutes)
	if err != nil {
		panic("navigation: invalid default catalog: " + err.Error())
	}
	return c
}
