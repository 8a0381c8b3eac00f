// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: cineflix/v1/review.proto

package cineflixv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CreateReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MovieId       string                 `protobuf:"bytes,1,opt,name=movie_id,json=movieId,proto3" json:"movie_id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Rating        float64                `protobuf:"fixed64,3,opt,name=rating,proto3" json:"rating,omitempty"` // 0 to 10
	Comment       string                 `protobuf:"bytes,4,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateReviewRequest) Reset() {
	*x = CreateReviewRequest{}
	mi := &file_cineflix_v1_review_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateReviewRequest) ProtoMessage() {}

func (x *CreateReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_review_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateReviewRequest.ProtoReflect.Descriptor instead.
func (*CreateReviewRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_review_proto_rawDescGZIP(), []int{0}
}

func (x *CreateReviewRequest) GetMovieId() string {
	if x != nil {
		return x.MovieId
	}
	return ""
}

func (x *CreateReviewRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *CreateReviewRequest) GetRating() float64 {
	if x != nil {
		return x.Rating
	}
	return 0
}

func (x *CreateReviewRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type GetReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReviewRequest) Reset() {
	*x = GetReviewRequest{}
	mi := &file_cineflix_v1_review_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReviewRequest) ProtoMessage() {}

func (x *GetReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_review_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReviewRequest.ProtoReflect.Descriptor instead.
func (*GetReviewRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_review_proto_rawDescGZIP(), []int{1}
}

func (x *GetReviewRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ListReviewsByMovieRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	MovieId       string                 `protobuf:"bytes,1,opt,name=movie_id,json=movieId,proto3" json:"movie_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReviewsByMovieRequest) Reset() {
	*x = ListReviewsByMovieRequest{}
	mi := &file_cineflix_v1_review_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReviewsByMovieRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReviewsByMovieRequest) ProtoMessage() {}

func (x *ListReviewsByMovieRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_review_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReviewsByMovieRequest.ProtoReflect.Descriptor instead.
func (*ListReviewsByMovieRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_review_proto_rawDescGZIP(), []int{2}
}

func (x *ListReviewsByMovieRequest) GetMovieId() string {
	if x != nil {
		return x.MovieId
	}
	return ""
}

type ListReviewsByUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReviewsByUserRequest) Reset() {
	*x = ListReviewsByUserRequest{}
	mi := &file_cineflix_v1_review_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReviewsByUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReviewsByUserRequest) ProtoMessage() {}

func (x *ListReviewsByUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_review_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReviewsByUserRequest.ProtoReflect.Descriptor instead.
func (*ListReviewsByUserRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_review_proto_rawDescGZIP(), []int{3}
}

func (x *ListReviewsByUserRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type UpdateReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Rating        float64                `protobuf:"fixed64,2,opt,name=rating,proto3" json:"rating,omitempty"`
	Comment       string                 `protobuf:"bytes,3,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateReviewRequest) Reset() {
	*x = UpdateReviewRequest{}
	mi := &file_cineflix_v1_review_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateReviewRequest) ProtoMessage() {}

func (x *UpdateReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_review_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateReviewRequest.ProtoReflect.Descriptor instead.
func (*UpdateReviewRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_review_proto_rawDescGZIP(), []int{4}
}

func (x *UpdateReviewRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateReviewRequest) GetRating() float64 {
	if x != nil {
		return x.Rating
	}
	return 0
}

func (x *UpdateReviewRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type DeleteReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteReviewRequest) Reset() {
	*x = DeleteReviewRequest{}
	mi := &file_cineflix_v1_review_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteReviewRequest) ProtoMessage() {}

func (x *DeleteReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_review_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteReviewRequest.ProtoReflect.Descriptor instead.
func (*DeleteReviewRequest) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_review_proto_rawDescGZIP(), []int{5}
}

func (x *DeleteReviewRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteReviewResponse) Reset() {
	*x = DeleteReviewResponse{}
	mi := &file_cineflix_v1_review_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteReviewResponse) ProtoMessage() {}

func (x *DeleteReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_review_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteReviewResponse.ProtoReflect.Descriptor instead.
func (*DeleteReviewResponse) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_review_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteReviewResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *DeleteReviewResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type ReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	MovieId       string                 `protobuf:"bytes,2,opt,name=movie_id,json=movieId,proto3" json:"movie_id,omitempty"`
	UserId        string                 `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Rating        float64                `protobuf:"fixed64,4,opt,name=rating,proto3" json:"rating,omitempty"`
	Comment       string                 `protobuf:"bytes,5,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReviewResponse) Reset() {
	*x = ReviewResponse{}
	mi := &file_cineflix_v1_review_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReviewResponse) ProtoMessage() {}

func (x *ReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_review_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReviewResponse.ProtoReflect.Descriptor instead.
func (*ReviewResponse) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_review_proto_rawDescGZIP(), []int{7}
}

func (x *ReviewResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReviewResponse) GetMovieId() string {
	if x != nil {
		return x.MovieId
	}
	return ""
}

func (x *ReviewResponse) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ReviewResponse) GetRating() float64 {
	if x != nil {
		return x.Rating
	}
	return 0
}

func (x *ReviewResponse) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type ListReviewsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reviews       []*ReviewResponse      `protobuf:"bytes,1,rep,name=reviews,proto3" json:"reviews,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReviewsResponse) Reset() {
	*x = ListReviewsResponse{}
	mi := &file_cineflix_v1_review_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReviewsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReviewsResponse) ProtoMessage() {}

func (x *ListReviewsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cineflix_v1_review_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReviewsResponse.ProtoReflect.Descriptor instead.
func (*ListReviewsResponse) Descriptor() ([]byte, []int) {
	return file_cineflix_v1_review_proto_rawDescGZIP(), []int{8}
}

func (x *ListReviewsResponse) GetReviews() []*ReviewResponse {
	if x != nil {
		return x.Reviews
	}
	return nil
}

var File_cineflix_v1_review_proto protoreflect.FileDescriptor

const file_cineflix_v1_review_proto_rawDesc = "" +
	"\n" +
	"\x18cineflix/v1/review.proto\x12\vcineflix.v1\"{\n" +
	"\x13CreateReviewRequest\x12\x19\n" +
	"\bmovie_id\x18\x01 \x01(\tR\amovieId\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x16\n" +
	"\x06rating\x18\x03 \x01(\x01R\x06rating\x12\x18\n" +
	"\acomment\x18\x04 \x01(\tR\acomment\"\"\n" +
	"\x10GetReviewRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"6\n" +
	"\x19ListReviewsByMovieRequest\x12\x19\n" +
	"\bmovie_id\x18\x01 \x01(\tR\amovieId\"3\n" +
	"\x18ListReviewsByUserRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"W\n" +
	"\x13UpdateReviewRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06rating\x18\x02 \x01(\x01R\x06rating\x12\x18\n" +
	"\acomment\x18\x03 \x01(\tR\acomment\"%\n" +
	"\x13DeleteReviewRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"J\n" +
	"\x14DeleteReviewResponse\x12\x18\n" +
	"\asuccess\x18\x01 \x01(\bR\asuccess\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"\x86\x01\n" +
	"\x0eReviewResponse\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bmovie_id\x18\x02 \x01(\tR\amovieId\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12\x16\n" +
	"\x06rating\x18\x04 \x01(\x01R\x06rating\x12\x18\n" +
	"\acomment\x18\x05 \x01(\tR\acomment\"L\n" +
	"\x13ListReviewsResponse\x125\n" +
	"\areviews\x18\x01 \x03(\v2\x1b.cineflix.v1.ReviewResponseR\areviews2\x89\x04\n" +
	"\rReviewService\x12M\n" +
	"\fCreateReview\x12 .cineflix.v1.CreateReviewRequest\x1a\x1b.cineflix.v1.ReviewResponse\x12G\n" +
	"\tGetReview\x12\x1d.cineflix.v1.GetReviewRequest\x1a\x1b.cineflix.v1.ReviewResponse\x12^\n" +
	"\x12ListReviewsByMovie\x12&.cineflix.v1.ListReviewsByMovieRequest\x1a .cineflix.v1.ListReviewsResponse\x12\\\n" +
	"\x11ListReviewsByUser\x12%.cineflix.v1.ListReviewsByUserRequest\x1a .cineflix.v1.ListReviewsResponse\x12M\n" +
	"\fUpdateReview\x12 .cineflix.v1.UpdateReviewRequest\x1a\x1b.cineflix.v1.ReviewResponse\x12S\n" +
	"\fDeleteReview\x12 .cineflix.v1.DeleteReviewRequest\x1a!.cineflix.v1.DeleteReviewResponseB:Z8github.com/cineflix/dbservice/pkg/cineflix/v1;cineflixv1b\x06proto3"

var (
	file_cineflix_v1_review_proto_rawDescOnce sync.Once
	file_cineflix_v1_review_proto_rawDescData []byte
)

func file_cineflix_v1_review_proto_rawDescGZIP() []byte {
	file_cineflix_v1_review_proto_rawDescOnce.Do(func() {
		file_cineflix_v1_review_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_cineflix_v1_review_proto_rawDesc), len(file_cineflix_v1_review_proto_rawDesc)))
	})
	return file_cineflix_v1_review_proto_rawDescData
}

var file_cineflix_v1_review_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_cineflix_v1_review_proto_goTypes = []any{
	(*CreateReviewRequest)(nil),       // 0: cineflix.v1.CreateReviewRequest
	(*GetReviewRequest)(nil),          // 1: cineflix.v1.GetReviewRequest
	(*ListReviewsByMovieRequest)(nil), // 2: cineflix.v1.ListReviewsByMovieRequest
	(*ListReviewsByUserRequest)(nil),  // 3: cineflix.v1.ListReviewsByUserRequest
	(*UpdateReviewRequest)(nil),       // 4: cineflix.v1.UpdateReviewRequest
	(*DeleteReviewRequest)(nil),       // 5: cineflix.v1.DeleteReviewRequest
	(*DeleteReviewResponse)(nil),      // 6: cineflix.v1.DeleteReviewResponse
	(*ReviewResponse)(nil),            // 7: cineflix.v1.ReviewResponse
	(*ListReviewsResponse)(nil),       // 8: cineflix.v1.ListReviewsResponse
}
var file_cineflix_v1_review_proto_depIdxs = []int32{
	7, // 0: cineflix.v1.ListReviewsResponse.reviews:type_name -> cineflix.v1.ReviewResponse
	0, // 1: cineflix.v1.ReviewService.CreateReview:input_type -> cineflix.v1.CreateReviewRequest
	1, // 2: cineflix.v1.ReviewService.GetReview:input_type -> cineflix.v1.GetReviewRequest
	2, // 3: cineflix.v1.ReviewService.ListReviewsByMovie:input_type -> cineflix.v1.ListReviewsByMovieRequest
	3, // 4: cineflix.v1.ReviewService.ListReviewsByUser:input_type -> cineflix.v1.ListReviewsByUserRequest
	4, // 5: cineflix.v1.ReviewService.UpdateReview:input_type -> cineflix.v1.UpdateReviewRequest
	5, // 6: cineflix.v1.ReviewService.DeleteReview:input_type -> cineflix.v1.DeleteReviewRequest
	7, // 7: cineflix.v1.ReviewService.CreateReview:output_type -> cineflix.v1.ReviewResponse
	7, // 8: cineflix.v1.ReviewService.GetReview:output_type -> cineflix.v1.ReviewResponse
	8, // 9: cineflix.v1.ReviewService.ListReviewsByMovie:output_type -> cineflix.v1.ListReviewsResponse
	8, // 10: cineflix.v1.ReviewService.ListReviewsByUser:output_type -> cineflix.v1.ListReviewsResponse
	7, // 11: cineflix.v1.ReviewService.UpdateReview:output_type -> cineflix.v1.ReviewResponse
	6, // 12: cineflix.v1.ReviewService.DeleteReview:output_type -> cineflix.v1.DeleteReviewResponse
	7, // [7:13] is the sub-list for method output_type
	1, // [1:7] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_cineflix_v1_review_proto_init() }
func file_cineflix_v1_review_proto_init() {
	if File_cineflix_v1_review_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_cineflix_v1_review_proto_rawDesc), len(file_cineflix_v1_review_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_cineflix_v1_review_proto_goTypes,
		DependencyIndexes: file_cineflix_v1_review_proto_depIdxs,
		MessageInfos:      file_cineflix_v1_review_proto_msgTypes,
	}.Build()
	File_cineflix_v1_review_proto = out.File
	file_cineflix_v1_review_proto_goTypes = nil
	file_cineflix_v1_review_proto_depIdxs = nil
}
