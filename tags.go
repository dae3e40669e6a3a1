// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffep

// Tags that point to child directories.
const (
	TagSubIFDs             uint16 = 0x014a // 330
	TagExifIFD             uint16 = 0x8769 // 34665
	TagGPSInfoIFD          uint16 = 0x8825 // 34853
	TagInteroperabilityIFD uint16 = 0xa005 // 40965
)

const (
	tagNewSubfileType = 0x00fe
	tagStripOffsets   = 0x0111
)

// Tag names, TIFF 6.0, TIFF/EP and Exif IFD.
// GPS IFD tags are left out as their IDs overlap with the above.
var tagNames = map[uint16]string{
	0x00fe: "NewSubfileType",
	0x00ff: "SubfileType",
	0x0100: "ImageWidth",
	0x0101: "ImageLength",
	0x0102: "BitsPerSample",
	0x0103: "Compression",
	0x0106: "PhotometricInterpretation",
	0x010e: "ImageDescription",
	0x010f: "Make",
	0x0110: "Model",
	0x0111: "StripOffsets",
	0x0112: "Orientation",
	0x0115: "SamplesPerPixel",
	0x0116: "RowsPerStrip",
	0x0117: "StripByteCounts",
	0x0118: "MinSampleValue",
	0x0119: "MaxSampleValue",
	0x011a: "XResolution",
	0x011b: "YResolution",
	0x011c: "PlanarConfiguration",
	0x0120: "FreeOffsets",
	0x0121: "FreeByteCounts",
	0x0128: "ResolutionUnit",
	0x0131: "Software",
	0x0132: "DateTime",
	0x013b: "Artist",
	0x0142: "TileWidth",
	0x0143: "TileLength",
	0x0144: "TileOffsets",
	0x0145: "TileByteCounts",
	0x014a: "SubIFDs",
	0x0201: "JPEGInterchangeFormat",
	0x0202: "JPEGInterchangeFormatLength",
	0x0212: "YCbCrSubSampling",
	0x0213: "YCbCrPositioning",
	0x02bc: "XMP",
	0x828d: "CFARepeatPatternDim",
	0x828e: "CFAPattern",
	0x8298: "Copyright",
	0x829a: "ExposureTime",
	0x829d: "FNumber",
	0x8769: "ExifIFD",
	0x8822: "ExposureProgram",
	0x8824: "SpectralSensitivity",
	0x8825: "GPSInfoIFD",
	0x8827: "ISOSpeedRatings",
	0x8828: "OECF",
	0x9000: "ExifVersion",
	0x9003: "DateTimeOriginal",
	0x9004: "DateTimeDigitized",
	0x9101: "ComponentsConfiguration",
	0x9102: "CompressedBitsPerPixel",
	0x9201: "ShutterSpeedValue",
	0x9202: "ApertureValue",
	0x9203: "BrightnessValue",
	0x9204: "ExposureBiasValue",
	0x9205: "MaxApertureValue",
	0x9206: "SubjectDistance",
	0x9207: "MeteringMode",
	0x9208: "LightSource",
	0x9209: "Flash",
	0x920a: "FocalLength",
	0x9214: "SubjectArea",
	0x927c: "MakerNote",
	0x9286: "UserComment",
	0x9290: "SubSecTime",
	0x9291: "SubSecTimeOriginal",
	0x9292: "SubSecTimeDigitized",
	0xa000: "FlashpixVersion",
	0xa001: "ColorSpace",
	0xa002: "PixelXDimension",
	0xa003: "PixelYDimension",
	0xa004: "RelatedSoundFile",
	0xa005: "InteroperabilityIFD",
	0xa20e: "FocalPlaneXResolution",
	0xa20f: "FocalPlaneYResolution",
	0xa210: "FocalPlaneResolutionUnit",
	0xa215: "ExposureIndex",
	0xa217: "SensingMethod",
	0xa300: "FileSource",
	0xa301: "SceneType",
	0xa401: "CustomRendered",
	0xa402: "ExposureMode",
	0xa403: "WhiteBalance",
	0xa404: "DigitalZoomRatio",
	0xa405: "FocalLengthIn35mmFilm",
	0xa406: "SceneCaptureType",
	0xa407: "GainControl",
	0xa408: "Contrast",
	0xa409: "Saturation",
	0xa40a: "Sharpness",
	0xa40c: "SubjectDistanceRange",
	0xa420: "ImageUniqueID",
	0xa433: "LensMake",
	0xa434: "LensModel",
	0xc612: "DNGVersion",
	0xc614: "UniqueCameraModel",
	0xc620: "DefaultCropSize",
}

var tagIDs = map[string]uint16{}

func init() {
	for k, v := range tagNames {
		tagIDs[v] = k
	}
}

// TagName returns the name of the tag with the given ID.
func TagName(id uint16) (string, bool) {
	name, found := tagNames[id]
	return name, found
}

// TagID returns the ID of the tag with the given name, e.g. "SubIFDs".
func TagID(name string) (uint16, bool) {
	id, found := tagIDs[name]
	return id, found
}

var compressionNames = map[uint16]string{
	1:     "Uncompressed",
	2:     "CCITTRLE",
	3:     "CCITTRLE",
	4:     "CCITT Group 4",
	5:     "LZW",
	6:     `"Old Style" JPEG`,
	7:     `"New Style" JPEG`,
	8:     "DEFLATE",
	9:     "JBIG",
	10:    "JBIG",
	32766: "NeXT 2-bit RLE",
	32767: "Sony ARW",
	32769: "Packed RAW / NIKON_PACK",
	32770: "Samsung SRW",
	32771: "CCITTRLEW",
	32773: "PackBits",
	32809: "ThunderScan",
	32867: "Kodak KDC",
	32895: "T8CTPAD, IT8LW, IT8MP, IT8BL",
	32896: "T8CTPAD, IT8LW, IT8MP, IT8BL",
	32897: "T8CTPAD, IT8LW, IT8MP, IT8BL",
	32898: "T8CTPAD, IT8LW, IT8MP, IT8BL",
	32946: "DEFLATE",
	32947: "Kodak DCS",
	33003: "Aperio SVS",
	33005: "Aperio SVS",
	34661: "JBIG",
	34676: "SGILOG",
	34677: "SGILOG24",
	34692: "LuraDocument Format",
	34712: "JPEG 2000",
	34713: "Nikon NEF",
	34715: "JBIG2",
	34718: "MDI",
	34719: "MDI",
	34720: "MDI",
	34892: "Lossy JPEG (DNG)",
}

// CompressionName returns a description of a Compression tag value.
func CompressionName(code uint16) (string, bool) {
	name, found := compressionNames[code]
	return name, found
}
